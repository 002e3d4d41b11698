package tracker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

// RunBatch runs every preset in ids with at most concurrency runs in flight.
// All ids are checked before anything runs. The returned slice follows ids;
// the stored history follows completion order.
func (t *Tracker) RunBatch(ctx context.Context, ids []string, opts RunOptions, concurrency int) ([]*models.GenerationRun, error) {
	presets := make([]models.GenerationPreset, len(ids))
	for i, id := range ids {
		p, ok := t.presets.Get(id)
		if !ok {
			return nil, errors.NewUnknownPresetError(id)
		}
		presets[i] = p
	}

	if concurrency <= 0 {
		concurrency = 1
	}
	runs := make([]*models.GenerationRun, len(presets))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range presets {
		i := i
		g.Go(func() error {
			runs[i] = t.RunPreset(ctx, presets[i], opts)
			return nil
		})
	}
	_ = g.Wait()

	t.log.Info("Batch finished", map[string]interface{}{
		"runs":        len(runs),
		"concurrency": concurrency,
	})
	return runs, nil
}
