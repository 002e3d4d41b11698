package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/tracker"
)

type countingRecorder struct {
	mu       sync.Mutex
	started  int
	finished int
}

func (r *countingRecorder) RunStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started++
}

func (r *countingRecorder) RunFinished(string, string, bool, time.Duration, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
}

func (r *countingRecorder) PhaseFailed(string) {}

func localConfig() *config.Config {
	return &config.Config{
		Generation: config.GenerationConfig{
			Backend:          "local",
			Renderer:         "html",
			ProjectsDir:      "/projects",
			Timeout:          300000,
			BatchConcurrency: 2,
		},
		Store: config.StoreConfig{Driver: "memory"},
	}
}

func build(t *testing.T, cfg *config.Config) (*App, afero.Fs, *countingRecorder) {
	t.Helper()
	fs := afero.NewMemMapFs()
	rec := &countingRecorder{}
	a, err := Build(context.Background(), cfg, logger.NewTestLogger(t), Options{FS: fs, Recorder: rec})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, fs, rec
}

func TestBuild_LocalRunWritesProject(t *testing.T) {
	a, fs, rec := build(t, localConfig())

	run, err := a.Tracker.RunTestGeneration(context.Background(), "restaurant-l2", tracker.RunOptions{Deploy: true})
	require.NoError(t, err)

	require.True(t, run.Success, run.Error)
	assert.Equal(t, "assembly", run.Path)
	assert.Equal(t, filepath.Join("/projects", run.ArtifactName), run.Result.ProjectPath)
	assert.Equal(t, 4, run.Result.PageCount)
	assert.Equal(t, 2, run.Result.ModuleCount)
	assert.True(t, run.Deployed)
	assert.Equal(t, "local", run.DeployResult.Status)

	ok, err := afero.Exists(fs, filepath.Join(run.Result.ProjectPath, "index.html"))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = afero.Exists(fs, filepath.Join(run.Result.ProjectPath, "menu", "index.html"))
	assert.True(t, ok)

	assert.Equal(t, 1, rec.started)
	assert.Equal(t, 1, rec.finished)
}

func TestBuild_CleanupRemovesProject(t *testing.T) {
	a, fs, _ := build(t, localConfig())

	run, err := a.Tracker.RunTestGeneration(context.Background(), "restaurant-l2", tracker.RunOptions{Cleanup: true})
	require.NoError(t, err)

	assert.True(t, run.CleanedUp)
	ok, _ := afero.DirExists(fs, filepath.Join("/projects", run.ArtifactName))
	assert.False(t, ok)
}

func TestBuild_OrchestrationWithoutBackendFails(t *testing.T) {
	a, _, _ := build(t, localConfig())

	run, err := a.Tracker.RunTestGeneration(context.Background(), "fitness-instant", tracker.RunOptions{})
	require.NoError(t, err)

	assert.False(t, run.Success)
	assert.Equal(t, "orchestration", run.Path)
	assert.NotEmpty(t, run.Error)
}

func TestApp_RunBatch(t *testing.T) {
	a, _, _ := build(t, localConfig())

	runs, err := a.RunBatch(context.Background(), []string{"restaurant-l2", "salon-quickstart", "law-custom"}, tracker.RunOptions{})
	require.NoError(t, err)

	require.Len(t, runs, 3)
	assert.True(t, runs[0].Success)
	assert.True(t, runs[1].Success)
	assert.False(t, runs[2].Success)

	s, err := a.Tracker.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, "66.7%", s.PassRate)
}

func TestBuild_LoadsPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
presets:
  - id: corner-deli
    mode: quickstart
    tier: L1
    data:
      businessName: Corner Deli
      industry: restaurant
`), 0o644))
	cfg := localConfig()
	cfg.Generation.PresetsPath = path

	a, _, _ := build(t, cfg)

	run, err := a.Tracker.RunTestGeneration(context.Background(), "corner-deli", tracker.RunOptions{})
	require.NoError(t, err)
	require.True(t, run.Success, run.Error)
	assert.Equal(t, []string{"HomePage", "ContactPage"}, run.Result.Pages)
}

func TestBuild_Errors(t *testing.T) {
	cfg := localConfig()
	cfg.Generation.Backend = "ftp"
	_, err := Build(context.Background(), cfg, nil, Options{FS: afero.NewMemMapFs()})
	assert.Error(t, err)

	cfg = localConfig()
	cfg.Generation.PresetsPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = Build(context.Background(), cfg, nil, Options{FS: afero.NewMemMapFs()})
	assert.Error(t, err)
}
