// Package router turns one generation preset into exactly one backend call.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 5 * time.Minute

type Path string

const (
	PathAssembly      Path = "assembly"
	PathOrchestration Path = "orchestration"
	PathRebuild       Path = "rebuild"
)

// Tiers are the recognized site-complexity levels.
var Tiers = []string{"L1", "L2", "L3", "L4"}

// IsTier reports whether tier is recognized. Matching ignores case.
func IsTier(tier string) bool {
	t := strings.ToUpper(strings.TrimSpace(tier))
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

type Assembler interface {
	Assemble(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error)
}

type Orchestrator interface {
	Orchestrate(ctx context.Context, req models.OrchestrationRequest) (*models.BackendResult, error)
}

type Rebuilder interface {
	Rebuild(ctx context.Context, req models.RebuildRequest) (*models.BackendResult, error)
}

type AssemblerFunc func(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error)

func (f AssemblerFunc) Assemble(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error) {
	return f(ctx, req)
}

type OrchestratorFunc func(ctx context.Context, req models.OrchestrationRequest) (*models.BackendResult, error)

func (f OrchestratorFunc) Orchestrate(ctx context.Context, req models.OrchestrationRequest) (*models.BackendResult, error) {
	return f(ctx, req)
}

type RebuilderFunc func(ctx context.Context, req models.RebuildRequest) (*models.BackendResult, error)

func (f RebuilderFunc) Rebuild(ctx context.Context, req models.RebuildRequest) (*models.BackendResult, error) {
	return f(ctx, req)
}

// Meta tags an outgoing request with the run that issued it.
type Meta struct {
	RunID    string
	PresetID string
	// ArtifactName replaces the business name as the assembled project name when set.
	ArtifactName string
}

// Decision is the resolved path with the exact request that will be sent.
type Decision struct {
	Path          Path
	Reason        string
	Assembly      *models.AssemblyRequest
	Orchestration *models.OrchestrationRequest
	Rebuild       *models.RebuildRequest
}

type Router struct {
	assembler    Assembler
	orchestrator Orchestrator
	rebuilder    Rebuilder
	timeout      time.Duration
	tracer       trace.Tracer
	log          logger.Logger
}

type Option func(*Router)

func WithRebuilder(r Rebuilder) Option {
	return func(rt *Router) { rt.rebuilder = r }
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(rt *Router) {
		if d > 0 {
			rt.timeout = d
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(rt *Router) { rt.tracer = t }
}

func WithLogger(l logger.Logger) Option {
	return func(rt *Router) { rt.log = l }
}

func New(a Assembler, o Orchestrator, opts ...Option) *Router {
	r := &Router{
		assembler:    a,
		orchestrator: o,
		timeout:      DefaultTimeout,
		tracer:       otel.Tracer("sitegen-workers/router"),
		log:          logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timeout returns the per-call bound.
func (r *Router) Timeout() time.Duration {
	return r.timeout
}

// Decide resolves the backend path for a preset without calling anything.
// The first matching rule wins.
func (r *Router) Decide(p models.GenerationPreset, m Meta) Decision {
	mode := strings.ToLower(strings.TrimSpace(p.Mode))

	if mode == models.ModeAIDetection {
		return orchestrate(p, m, ShortPrompt(p), "ai-detection mode always uses orchestration")
	}
	if len(p.Data.Pages) > 0 && IsTier(p.Tier) {
		return assemble(p, m, "explicit pages with recognized tier "+strings.ToUpper(p.Tier))
	}

	switch mode {
	case models.ModeQuickstart:
		return assemble(p, m, "quickstart mode")
	case models.ModeInstant, models.ModeOrchestrator:
		return orchestrate(p, m, ShortPrompt(p), mode+" mode")
	case models.ModeCustom, models.ModeFullControl:
		return orchestrate(p, m, DetailedPrompt(p), mode+" mode")
	case models.ModeInspired, models.ModeReference:
		return orchestrate(p, m, InspiredPrompt(p), mode+" mode")
	case models.ModeRebuild:
		if r.rebuilder != nil {
			return Decision{
				Path:   PathRebuild,
				Reason: "rebuild mode",
				Rebuild: &models.RebuildRequest{
					ExistingURL:  p.Data.ExistingURL,
					BusinessName: p.Data.BusinessName,
					Industry:     p.EffectiveIndustry(),
					Location:     p.Data.Location,
					Tagline:      p.Data.Tagline,
					Theme:        p.Data.Theme,
					RunID:        m.RunID,
					PresetID:     m.PresetID,
				},
			}
		}
		return orchestrate(p, m, ShortPrompt(p), "rebuild mode without rebuilder falls back to instant")
	default:
		return assemble(p, m, fmt.Sprintf("unrecognized mode %q falls back to quickstart", p.Mode))
	}
}

// Supports reports whether the backend p would be routed to is configured.
func (r *Router) Supports(p models.GenerationPreset) bool {
	switch r.Decide(p, Meta{}).Path {
	case PathAssembly:
		return r.assembler != nil
	case PathRebuild:
		return r.rebuilder != nil
	default:
		return r.orchestrator != nil
	}
}

func assemble(p models.GenerationPreset, m Meta, reason string) Decision {
	name := p.Data.BusinessName
	if m.ArtifactName != "" {
		name = m.ArtifactName
	}
	pages := append([]string{}, p.Data.Pages...)
	modules := append([]string{}, p.Data.AdminModules...)
	return Decision{
		Path:   PathAssembly,
		Reason: reason,
		Assembly: &models.AssemblyRequest{
			Name:         name,
			BusinessName: p.Data.BusinessName,
			Industry:     p.EffectiveIndustry(),
			Tier:         strings.ToUpper(p.Tier),
			Description: models.AssemblyDescription{
				Pages:          pages,
				VisualStyle:    p.Data.VisualStyle,
				AIInstructions: p.Data.AIInstructions,
				Tagline:        p.Data.Tagline,
				Location:       p.Data.Location,
				Text:           p.Data.Description,
				Layout:         p.Data.Layout,
				HeroStyle:      p.Data.HeroStyle,
			},
			Theme:        p.Data.Theme,
			AdminTier:    p.Data.AdminTier,
			AdminModules: modules,
			TestMode:     true,
			RunID:        m.RunID,
			PresetID:     m.PresetID,
		},
	}
}

func orchestrate(p models.GenerationPreset, m Meta, prompt, reason string) Decision {
	return Decision{
		Path:   PathOrchestration,
		Reason: reason,
		Orchestration: &models.OrchestrationRequest{
			Input:      prompt,
			AutoDeploy: p.Data.AutoDeploy,
			RunID:      m.RunID,
			PresetID:   m.PresetID,
		},
	}
}

// Generate makes the single backend call for p, bounded by the router timeout.
func (r *Router) Generate(ctx context.Context, p models.GenerationPreset, m Meta) (*models.BackendResult, *Decision, error) {
	d := r.Decide(p, m)

	ctx, span := r.tracer.Start(ctx, "router.Generate", trace.WithAttributes(
		attribute.String("generation.mode", p.Mode),
		attribute.String("generation.tier", p.Tier),
		attribute.String("generation.path", string(d.Path)),
		attribute.String("generation.preset_id", m.PresetID),
		attribute.String("generation.run_id", m.RunID),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.log.Info("Dispatching generation", map[string]interface{}{
		"path":     d.Path,
		"reason":   d.Reason,
		"mode":     p.Mode,
		"presetId": m.PresetID,
		"runId":    m.RunID,
	})

	res, err := r.call(ctx, d)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			err = apperrors.NewGenerationTimeoutError(r.timeout, err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, &d, err
	}
	if res == nil {
		res = &models.BackendResult{}
	}
	span.SetAttributes(attribute.Int("generation.page_count", len(res.Pages)))
	return res, &d, nil
}

func (r *Router) call(ctx context.Context, d Decision) (*models.BackendResult, error) {
	switch d.Path {
	case PathAssembly:
		if r.assembler == nil {
			return nil, apperrors.NewValidationError("no assembly backend configured")
		}
		return r.assembler.Assemble(ctx, *d.Assembly)
	case PathRebuild:
		return r.rebuilder.Rebuild(ctx, *d.Rebuild)
	default:
		if r.orchestrator == nil {
			return nil, apperrors.NewValidationError("no orchestration backend configured")
		}
		return r.orchestrator.Orchestrate(ctx, *d.Orchestration)
	}
}
