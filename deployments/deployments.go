// Package deployments embeds the BPMN processes the workers serve.
package deployments

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed *.bpmn
var files embed.FS

// Resource is one deployable process definition.
type Resource struct {
	Name       string
	Definition []byte
}

// Resources returns every embedded process, sorted by file name.
func Resources() ([]Resource, error) {
	names, err := fs.Glob(files, "*.bpmn")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Resource, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Resource{Name: name, Definition: data})
	}
	return out, nil
}
