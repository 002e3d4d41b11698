package render

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"sitegen-workers/internal/common/errors"
)

// ProjectWriter stores rendered projects as directories under root.
type ProjectWriter struct {
	fs   afero.Fs
	root string
}

func NewProjectWriter(fs afero.Fs, root string) *ProjectWriter {
	return &ProjectWriter{fs: fs, root: root}
}

// Root returns the directory projects are written under.
func (w *ProjectWriter) Root() string {
	return w.root
}

func (w *ProjectWriter) projectDir(name string) (string, error) {
	if name == "" || name == "." || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", errors.NewValidationError(fmt.Sprintf("invalid project name %q", name))
	}
	return filepath.Join(w.root, name), nil
}

// Write replaces the project directory with files and returns its path.
func (w *ProjectWriter) Write(name string, files Files) (string, error) {
	dir, err := w.projectDir(name)
	if err != nil {
		return "", err
	}
	if err := w.fs.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("clear project %s: %w", name, err)
	}
	for _, rel := range files.Paths() {
		clean := path.Clean(rel)
		if path.IsAbs(clean) || strings.HasPrefix(clean, "..") {
			return "", errors.NewValidationError(fmt.Sprintf("file path %q escapes project", rel))
		}
		full := filepath.Join(dir, filepath.FromSlash(clean))
		if err := w.fs.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			return "", fmt.Errorf("create directory for %s: %w", rel, err)
		}
		if err := afero.WriteFile(w.fs, full, files[rel], 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", rel, err)
		}
	}
	return dir, nil
}

// Exists reports whether a project directory is present.
func (w *ProjectWriter) Exists(name string) (bool, error) {
	dir, err := w.projectDir(name)
	if err != nil {
		return false, err
	}
	return afero.DirExists(w.fs, dir)
}

// Delete removes a project. Removing a missing project is not an error.
func (w *ProjectWriter) Delete(name string) error {
	dir, err := w.projectDir(name)
	if err != nil {
		return err
	}
	if err := w.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove project %s: %w", name, err)
	}
	return nil
}
