// Package presets holds the named generation requests used for repeatable runs.
package presets

import (
	"fmt"
	"sort"
	"sync"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

// Registry is a concurrency-safe set of presets keyed by id. Get and List return copies.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]models.GenerationPreset
}

func NewRegistry(presets ...models.GenerationPreset) (*Registry, error) {
	r := &Registry{presets: make(map[string]models.GenerationPreset, len(presets))}
	for _, p := range presets {
		if err := r.Add(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry holding the built-in catalog.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("built-in presets: %v", err))
	}
	return r
}

// Add validates p and stores it, replacing any preset with the same id.
func (r *Registry) Add(p models.GenerationPreset) error {
	if err := Validate(p); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.ID] = p.Clone()
	return nil
}

func (r *Registry) Get(id string) (models.GenerationPreset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.presets[id]
	if !ok {
		return models.GenerationPreset{}, false
	}
	return p.Clone(), true
}

// MustGet is Get with an UNKNOWN_PRESET error.
func (r *Registry) MustGet(id string) (models.GenerationPreset, error) {
	p, ok := r.Get(id)
	if !ok {
		return models.GenerationPreset{}, errors.NewUnknownPresetError(id)
	}
	return p, nil
}

// List returns every preset sorted by id.
func (r *Registry) List() []models.GenerationPreset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.GenerationPreset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) IDs() []string {
	list := r.List()
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}
