package presets

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

// File is the on-disk preset format.
type File struct {
	Presets []models.GenerationPreset `yaml:"presets"`
}

// LoadFile reads presets from a YAML file.
func LoadFile(path string) ([]models.GenerationPreset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates every preset in r. Unknown keys and duplicate ids are errors.
func Decode(r io.Reader) ([]models.GenerationPreset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, errors.NewValidationError(fmt.Sprintf("parse presets: %v", err))
	}

	seen := make(map[string]bool, len(file.Presets))
	for _, p := range file.Presets {
		if seen[p.ID] {
			return nil, errors.NewValidationError(fmt.Sprintf("duplicate preset id %q", p.ID))
		}
		seen[p.ID] = true
		if err := Validate(p); err != nil {
			return nil, err
		}
	}
	return file.Presets, nil
}

// LoadInto adds the presets in path to r. An empty path is a no-op.
func LoadInto(r *Registry, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	list, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	for _, p := range list {
		if err := r.Add(p); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}
