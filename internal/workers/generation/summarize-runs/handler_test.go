package summarizeruns

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/tracker"
)

type fakeStore struct {
	runs     []models.GenerationRun
	listErr  error
	clearErr error
}

func (s *fakeStore) Add(_ context.Context, r models.GenerationRun) error {
	s.runs = append(s.runs, r)
	return nil
}

func (s *fakeStore) List(context.Context) ([]models.GenerationRun, error) {
	return s.runs, s.listErr
}

func (s *fakeStore) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.runs = nil
	return nil
}

func newHistory(store tracker.RunStore) *tracker.Tracker {
	return tracker.New(nil, nil, tracker.WithStore(store))
}

func TestHandler_Execute_SummarizesAndClears(t *testing.T) {
	store := &fakeStore{runs: []models.GenerationRun{
		{Success: true, Duration: 2000, Result: &models.RunResult{Cost: 0.01}},
		{Success: false, Duration: 1000},
	}}
	h := NewHandler(LoadConfig(), newHistory(store), logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), &Input{Clear: true})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Summary.Total)
	assert.Equal(t, "50.0%", out.Summary.PassRate)
	assert.Equal(t, "1.5s", out.Summary.AverageDuration)
	assert.Equal(t, "$0.0100", out.Summary.TotalCost)
	assert.True(t, out.Cleared)
	assert.Empty(t, store.runs)
}

func TestHandler_Execute_KeepsHistoryByDefault(t *testing.T) {
	store := &fakeStore{runs: []models.GenerationRun{{Success: true}}}
	h := NewHandler(LoadConfig(), newHistory(store), logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)

	assert.False(t, out.Cleared)
	assert.Len(t, store.runs, 1)
}

func TestHandler_Execute_StoreErrors(t *testing.T) {
	store := &fakeStore{listErr: apperrors.NewStoreError("list", errors.New("down"))}
	h := NewHandler(LoadConfig(), newHistory(store), logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))

	store = &fakeStore{clearErr: errors.New("readonly")}
	h = NewHandler(LoadConfig(), newHistory(store), logger.NewTestLogger(t))
	_, err = h.Execute(context.Background(), &Input{Clear: true})
	assert.Error(t, err)
}
