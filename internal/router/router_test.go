package router

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

type recorder struct {
	assembled    atomic.Int32
	orchestrated atomic.Int32
	rebuilt      atomic.Int32
	lastAssembly models.AssemblyRequest
	lastOrch     models.OrchestrationRequest
}

func (r *recorder) Assemble(_ context.Context, req models.AssemblyRequest) (*models.BackendResult, error) {
	r.assembled.Add(1)
	r.lastAssembly = req
	return &models.BackendResult{ProjectPath: "/out/" + req.Name, Pages: req.Description.Pages}, nil
}

func (r *recorder) Orchestrate(_ context.Context, req models.OrchestrationRequest) (*models.BackendResult, error) {
	r.orchestrated.Add(1)
	r.lastOrch = req
	return &models.BackendResult{ProjectPath: "/out/ai", Cost: 0.01}, nil
}

func (r *recorder) Rebuild(_ context.Context, req models.RebuildRequest) (*models.BackendResult, error) {
	r.rebuilt.Add(1)
	return &models.BackendResult{ProjectPath: "/out/rebuilt"}, nil
}

func preset(mode, tier string, pages ...string) models.GenerationPreset {
	return models.GenerationPreset{
		ID:   "p1",
		Mode: mode,
		Tier: tier,
		Data: models.PresetData{BusinessName: "Bella Cucina", Industry: "restaurant", Pages: pages},
	}
}

func TestDecide_ScenarioA_PagesAndTierBeatMode(t *testing.T) {
	r := New(&recorder{}, &recorder{})

	d := r.Decide(preset(models.ModeInstant, "L2", "home", "about", "menu"), Meta{RunID: "run-1", PresetID: "p1"})

	require.Equal(t, PathAssembly, d.Path)
	require.NotNil(t, d.Assembly)
	assert.Equal(t, []string{"home", "about", "menu"}, d.Assembly.Description.Pages)
	assert.True(t, d.Assembly.TestMode)
	assert.Equal(t, "run-1", d.Assembly.RunID)
	assert.Equal(t, "p1", d.Assembly.PresetID)
	assert.Nil(t, d.Orchestration)
}

func TestDecide_AIDetectionAlwaysOrchestrates(t *testing.T) {
	r := New(&recorder{}, &recorder{})

	for _, tier := range append([]string{"", "L9"}, Tiers...) {
		d := r.Decide(preset(models.ModeAIDetection, tier, "home", "about"), Meta{})
		assert.Equal(t, PathOrchestration, d.Path, tier)
		assert.Equal(t, "Create a website for Bella Cucina, a restaurant business", d.Orchestration.Input)
	}
}

func TestDecide_PagesNeedRecognizedTier(t *testing.T) {
	r := New(&recorder{}, &recorder{})

	assert.Equal(t, PathOrchestration, r.Decide(preset(models.ModeInstant, "L5", "home"), Meta{}).Path)
	assert.Equal(t, PathOrchestration, r.Decide(preset(models.ModeInstant, "", "home"), Meta{}).Path)
	assert.Equal(t, PathAssembly, r.Decide(preset(models.ModeInstant, "l3", "home"), Meta{}).Path)
	assert.Equal(t, PathOrchestration, r.Decide(preset(models.ModeInstant, "L1"), Meta{}).Path)
}

func TestDecide_Quickstart(t *testing.T) {
	d := New(nil, nil).Decide(preset(models.ModeQuickstart, ""), Meta{ArtifactName: "bella-cucina-x1y2z3"})

	require.Equal(t, PathAssembly, d.Path)
	assert.NotNil(t, d.Assembly.Description.Pages)
	assert.Empty(t, d.Assembly.Description.Pages)
	assert.NotNil(t, d.Assembly.AdminModules)
	assert.Equal(t, "bella-cucina-x1y2z3", d.Assembly.Name)
	assert.Equal(t, "restaurant", d.Assembly.Industry)
}

func TestDecide_UnknownModeFallsBackToQuickstart(t *testing.T) {
	d := New(nil, nil).Decide(preset("telepathic", ""), Meta{})
	assert.Equal(t, PathAssembly, d.Path)
	assert.Contains(t, d.Reason, "telepathic")

	d = New(nil, nil).Decide(preset("", ""), Meta{})
	assert.Equal(t, PathAssembly, d.Path)
}

func TestDecide_PromptModes(t *testing.T) {
	p := preset(models.ModeCustom, "")
	p.Data.Location = "Portland, OR"
	p.Data.Tagline = "Handmade pasta"
	p.Data.Description = "Family trattoria."
	p.Data.AIInstructions = "Add a reservations page."
	p.Data.InspirationURL = "https://example.com"
	p.Data.AutoDeploy = true

	r := New(nil, nil)

	d := r.Decide(p, Meta{})
	assert.Equal(t, "Create a website for Bella Cucina, a restaurant business in Portland, OR. Handmade pasta\n"+
		"Family trattoria.\n"+
		"Additional instructions: Add a reservations page.", d.Orchestration.Input)
	assert.True(t, d.Orchestration.AutoDeploy)

	p.Mode = models.ModeFullControl
	p.Data.VisualStyle = "rustic"
	assert.Contains(t, r.Decide(p, Meta{}).Orchestration.Input, "Family trattoria.\nVisual style: rustic\nAdditional instructions:")

	p.Mode = models.ModeReference
	assert.Equal(t, "Create a website for Bella Cucina, a restaurant business in Portland, OR. Handmade pasta\n"+
		"Use https://example.com as design inspiration.", r.Decide(p, Meta{}).Orchestration.Input)

	p.Mode = models.ModeOrchestrator
	assert.Equal(t, "Create a website for Bella Cucina, a restaurant business in Portland, OR. Handmade pasta",
		r.Decide(p, Meta{}).Orchestration.Input)
}

func TestShortPrompt_OmitsMissingClauses(t *testing.T) {
	p := models.GenerationPreset{Data: models.PresetData{BusinessName: "Iron Gym", Tagline: "Lift more"}}
	assert.Equal(t, "Create a website for Iron Gym. Lift more", ShortPrompt(p))

	p.Industry = "fitness"
	assert.Equal(t, "Create a website for Iron Gym, a fitness business. Lift more", ShortPrompt(p))
}

func TestDecide_Rebuild(t *testing.T) {
	p := preset(models.ModeRebuild, "")
	p.Data.ExistingURL = "https://old.example.com"

	d := New(nil, nil).Decide(p, Meta{})
	assert.Equal(t, PathOrchestration, d.Path, "no rebuilder falls back to instant")
	assert.Equal(t, ShortPrompt(p), d.Orchestration.Input)

	d = New(nil, nil, WithRebuilder(&recorder{})).Decide(p, Meta{RunID: "r"})
	require.Equal(t, PathRebuild, d.Path)
	assert.Equal(t, "https://old.example.com", d.Rebuild.ExistingURL)
	assert.Equal(t, "r", d.Rebuild.RunID)
}

func TestGenerate_CallsExactlyOneBackend(t *testing.T) {
	rec := &recorder{}
	r := New(rec, rec, WithRebuilder(rec))

	res, d, err := r.Generate(context.Background(), preset(models.ModeInstant, "L2", "home"), Meta{ArtifactName: "bella-1"})
	require.NoError(t, err)
	assert.Equal(t, PathAssembly, d.Path)
	assert.Equal(t, "/out/bella-1", res.ProjectPath)
	assert.EqualValues(t, 1, rec.assembled.Load())
	assert.EqualValues(t, 0, rec.orchestrated.Load())

	_, _, err = r.Generate(context.Background(), preset(models.ModeInstant, ""), Meta{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rec.assembled.Load())
	assert.EqualValues(t, 1, rec.orchestrated.Load())
	assert.EqualValues(t, 0, rec.rebuilt.Load())
}

func TestGenerate_PropagatesBackendError(t *testing.T) {
	boom := apperrors.NewBackendError("Invalid industry", 400)
	r := New(AssemblerFunc(func(context.Context, models.AssemblyRequest) (*models.BackendResult, error) {
		return nil, boom
	}), nil)

	res, d, err := r.Generate(context.Background(), preset(models.ModeQuickstart, ""), Meta{})
	assert.Nil(t, res)
	require.NotNil(t, d)
	assert.Same(t, boom, err)
}

func TestGenerate_Timeout(t *testing.T) {
	r := New(AssemblerFunc(func(ctx context.Context, _ models.AssemblyRequest) (*models.BackendResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), nil, WithTimeout(20*time.Millisecond))

	_, _, err := r.Generate(context.Background(), preset(models.ModeQuickstart, ""), Meta{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeGenerationTimeout, apperrors.CodeOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestGenerate_MissingBackend(t *testing.T) {
	_, _, err := New(nil, nil).Generate(context.Background(), preset(models.ModeInstant, ""), Meta{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSupports(t *testing.T) {
	rec := &recorder{}
	rebuild := preset(models.ModeRebuild, "")

	local := New(rec, nil)
	assert.True(t, local.Supports(preset(models.ModeQuickstart, "")))
	assert.True(t, local.Supports(preset(models.ModeInstant, "L1", "home")))
	assert.False(t, local.Supports(preset(models.ModeInstant, "")))
	assert.False(t, local.Supports(preset(models.ModeAIDetection, "L2", "home")))
	assert.False(t, local.Supports(rebuild))

	assert.True(t, New(nil, rec).Supports(rebuild))
	assert.True(t, New(nil, nil, WithRebuilder(rec)).Supports(rebuild))
	assert.False(t, New(nil, rec).Supports(preset(models.ModeQuickstart, "")))
}

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New(nil, nil).Timeout())
	assert.Equal(t, DefaultTimeout, New(nil, nil, WithTimeout(0)).Timeout())
	assert.Equal(t, time.Second, New(nil, nil, WithTimeout(time.Second)).Timeout())
}

func TestGenerate_RecordsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	rec := &recorder{}
	r := New(rec, rec, WithTracer(tp.Tracer("test")))
	_, _, err := r.Generate(context.Background(), preset(models.ModeCustom, ""), Meta{PresetID: "p1"})
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "router.Generate", spans[0].Name)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "orchestration", attrs["generation.path"])
	assert.Equal(t, "custom", attrs["generation.mode"])
	assert.Equal(t, "p1", attrs["generation.preset_id"])
}
