// Package tracker runs generations under a recorded, failure-isolated envelope.
package tracker

import (
	"context"
	"fmt"
	"math"
	"path"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/router"
)

// Phase is a step of the run state machine. Phases only move forward.
type Phase string

const (
	PhasePending  Phase = "pending"
	PhaseRunning  Phase = "running"
	PhaseSuccess  Phase = "success"
	PhaseFailed   Phase = "failed"
	PhaseDeploy   Phase = "deploy"
	PhaseCleanup  Phase = "cleanup"
	PhaseTerminal Phase = "terminal"
)

type Generator interface {
	Generate(ctx context.Context, p models.GenerationPreset, m router.Meta) (*models.BackendResult, *router.Decision, error)
}

type PresetSource interface {
	Get(id string) (models.GenerationPreset, bool)
}

type Deployer interface {
	DeployProject(ctx context.Context, name string) (*models.DeployResult, error)
}

type Cleaner interface {
	DeleteProject(ctx context.Context, name string, opts models.CleanupOptions) error
}

// Observer is told about every completed run after it is stored.
type Observer interface {
	RunCompleted(ctx context.Context, run models.GenerationRun) error
}

type ObserverFunc func(ctx context.Context, run models.GenerationRun) error

func (f ObserverFunc) RunCompleted(ctx context.Context, run models.GenerationRun) error {
	return f(ctx, run)
}

// Recorder receives run metrics. *metrics.GenerationMetrics satisfies it.
type Recorder interface {
	RunStarted()
	RunFinished(mode, path string, success bool, duration time.Duration, cost float64)
	PhaseFailed(phase string)
}

// RunOptions selects the optional phases of a run.
type RunOptions struct {
	Deploy    bool `json:"deploy"`
	Cleanup   bool `json:"cleanup"`
	LocalOnly bool `json:"localOnly"`
}

type Tracker struct {
	gen          Generator
	presets      PresetSource
	store        RunStore
	deployer     Deployer
	cleaner      Cleaner
	observers    []Observer
	recorder     Recorder
	now          func() time.Time
	newID        func() string
	phaseTimeout time.Duration
	log          logger.Logger
}

type Option func(*Tracker)

func WithStore(s RunStore) Option {
	return func(t *Tracker) { t.store = s }
}

func WithDeployer(d Deployer) Option {
	return func(t *Tracker) { t.deployer = d }
}

func WithCleaner(c Cleaner) Option {
	return func(t *Tracker) { t.cleaner = c }
}

func WithObserver(o ...Observer) Option {
	return func(t *Tracker) { t.observers = append(t.observers, o...) }
}

func WithRecorder(r Recorder) Option {
	return func(t *Tracker) { t.recorder = r }
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func WithIDGenerator(f func() string) Option {
	return func(t *Tracker) { t.newID = f }
}

// WithPhaseTimeout bounds each deploy and cleanup call. Zero means no bound.
func WithPhaseTimeout(d time.Duration) Option {
	return func(t *Tracker) { t.phaseTimeout = d }
}

func WithLogger(l logger.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

func New(gen Generator, presets PresetSource, opts ...Option) *Tracker {
	t := &Tracker{
		gen:     gen,
		presets: presets,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.store == nil {
		t.store = NewMemoryStore()
	}
	return t
}

// RunTestGeneration runs the preset with id. Only an unknown id returns an error,
// and in that case nothing is recorded.
func (t *Tracker) RunTestGeneration(ctx context.Context, presetID string, opts RunOptions) (*models.GenerationRun, error) {
	p, ok := t.presets.Get(presetID)
	if !ok {
		return nil, errors.NewUnknownPresetError(presetID)
	}
	return t.RunPreset(ctx, p, opts), nil
}

// RunPreset always returns a completed record. Generation errors mark the run failed;
// deploy and cleanup errors only fill their own fields.
func (t *Tracker) RunPreset(ctx context.Context, p models.GenerationPreset, opts RunOptions) *models.GenerationRun {
	start := t.now()
	run := models.GenerationRun{
		ID:        t.newID(),
		PresetID:  p.ID,
		Mode:      p.Mode,
		Tier:      p.Tier,
		Industry:  p.EffectiveIndustry(),
		StartTime: start,
	}
	run.ArtifactName = ArtifactName(displayName(p), start, run.ID)
	log := logger.ForRun(t.log, run.ID, run.PresetID).WithFields(map[string]interface{}{
		"artifact": run.ArtifactName,
		"mode":     run.Mode,
	})
	log.Debug("Run phase", map[string]interface{}{"phase": PhasePending})

	if t.recorder != nil {
		t.recorder.RunStarted()
	}
	log.Info("Run phase", map[string]interface{}{"phase": PhaseRunning})

	res, decision, err := t.generate(ctx, p, router.Meta{
		RunID:        run.ID,
		PresetID:     run.PresetID,
		ArtifactName: run.ArtifactName,
	})
	if decision != nil {
		run.Path = string(decision.Path)
	}

	end := t.now()
	if end.Before(start) {
		end = start
	}
	run.EndTime = end
	run.Duration = end.Sub(start).Milliseconds()

	if err != nil {
		run.Success = false
		run.Error = err.Error()
		if run.Error == "" {
			run.Error = "generation failed"
		}
		run.ErrorStack = errors.StackOf(err)
		log.Error("Run phase", map[string]interface{}{
			"phase":      PhaseFailed,
			"error":      run.Error,
			"errorCode":  string(errors.CodeOf(err)),
			"durationMs": run.Duration,
		})
	} else {
		run.Success = true
		run.Result = normalizeResult(res)
		log.Info("Run phase", map[string]interface{}{
			"phase":      PhaseSuccess,
			"path":       run.Path,
			"pages":      run.Result.PageCount,
			"cost":       run.Result.Cost,
			"durationMs": run.Duration,
		})
	}

	if t.recorder != nil {
		t.recorder.RunFinished(run.Mode, run.Path, run.Success, run.DurationValue(), run.Cost())
	}

	target := projectName(&run)
	if opts.Deploy && run.Success {
		t.deploy(ctx, &run, target, log)
	}
	if opts.Cleanup {
		t.cleanup(ctx, &run, target, opts.LocalOnly, log)
	}

	t.finish(ctx, run, log)
	return &run
}

func displayName(p models.GenerationPreset) string {
	switch {
	case p.Data.BusinessName != "":
		return p.Data.BusinessName
	case p.Name != "":
		return p.Name
	default:
		return p.ID
	}
}

// projectName is the deploy and cleanup target: the directory the backend reported,
// or the artifact name when there is none.
func projectName(run *models.GenerationRun) string {
	if run.Result != nil && run.Result.ProjectPath != "" {
		base := path.Base(filepath.ToSlash(run.Result.ProjectPath))
		if base != "." && base != "/" {
			return base
		}
	}
	return run.ArtifactName
}

func (t *Tracker) generate(ctx context.Context, p models.GenerationPreset, m router.Meta) (res *models.BackendResult, d *router.Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v\n%s", r, debug.Stack())
		}
	}()
	return t.gen.Generate(ctx, p, m)
}

// normalizeResult zero-fills everything the backend left out.
func normalizeResult(res *models.BackendResult) *models.RunResult {
	out := &models.RunResult{Pages: []string{}}
	if res == nil {
		return out
	}
	out.ProjectPath = res.ProjectPath
	if res.Pages != nil {
		out.Pages = append([]string{}, res.Pages...)
	}
	out.PageCount = len(out.Pages)
	out.ModuleCount = len(res.Modules)
	out.Cost = finite(res.Cost)
	out.Tokens = models.TokenUsage{
		Input:  nonNegative(res.Tokens.Input),
		Output: nonNegative(res.Tokens.Output),
	}
	return out
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (t *Tracker) deploy(ctx context.Context, run *models.GenerationRun, target string, log logger.Logger) {
	if t.deployer == nil {
		run.DeployError = "deploy requested but no deployer is configured"
		log.Warn("Run phase", map[string]interface{}{"phase": PhaseDeploy, "error": run.DeployError})
		return
	}

	var result *models.DeployResult
	err := t.runPhase(ctx, PhaseDeploy, func(ctx context.Context) error {
		var err error
		result, err = t.deployer.DeployProject(ctx, target)
		return err
	})
	if err != nil {
		derr := errors.NewDeployError(target, err)
		run.DeployError = derr.Error()
		if t.recorder != nil {
			t.recorder.PhaseFailed(string(PhaseDeploy))
		}
		log.Warn("Run phase", map[string]interface{}{"phase": PhaseDeploy, "error": run.DeployError})
		return
	}
	run.Deployed = true
	run.DeployResult = result
	log.Info("Run phase", map[string]interface{}{"phase": PhaseDeploy, "deployed": true})
}

func (t *Tracker) cleanup(ctx context.Context, run *models.GenerationRun, target string, localOnly bool, log logger.Logger) {
	if t.cleaner == nil {
		run.CleanupError = "cleanup requested but no cleaner is configured"
		log.Warn("Run phase", map[string]interface{}{"phase": PhaseCleanup, "error": run.CleanupError})
		return
	}

	err := t.runPhase(ctx, PhaseCleanup, func(ctx context.Context) error {
		return t.cleaner.DeleteProject(ctx, target, models.CleanupOptions{LocalOnly: localOnly})
	})
	if err != nil {
		cerr := errors.NewCleanupError(target, err)
		run.CleanupError = cerr.Error()
		if t.recorder != nil {
			t.recorder.PhaseFailed(string(PhaseCleanup))
		}
		log.Warn("Run phase", map[string]interface{}{"phase": PhaseCleanup, "error": run.CleanupError})
		return
	}
	run.CleanedUp = true
	log.Info("Run phase", map[string]interface{}{"phase": PhaseCleanup, "cleanedUp": true})
}

// runPhase calls fn, converting panics to errors. With a phase timeout the run stops
// waiting when it expires; fn keeps a cancelled context and is expected to return.
func (t *Tracker) runPhase(ctx context.Context, phase Phase, fn func(context.Context) error) error {
	call := func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panic: %v", phase, r)
			}
		}()
		return fn(ctx)
	}
	if t.phaseTimeout <= 0 {
		return call(ctx)
	}

	pctx, cancel := context.WithTimeout(ctx, t.phaseTimeout)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- call(pctx) }()

	select {
	case err := <-done:
		return err
	case <-pctx.Done():
		if ctx.Err() != nil {
			return fmt.Errorf("%s canceled: %w", phase, ctx.Err())
		}
		return fmt.Errorf("%s timed out after %s: %w", phase, t.phaseTimeout, pctx.Err())
	}
}

// finish appends the record once and notifies observers.
func (t *Tracker) finish(ctx context.Context, run models.GenerationRun, log logger.Logger) {
	storeCtx := context.WithoutCancel(ctx)
	if err := t.store.Add(storeCtx, run.Clone()); err != nil {
		log.Error("Failed to store run", map[string]interface{}{"error": err.Error()})
	}
	for _, o := range t.observers {
		if err := notify(storeCtx, o, run.Clone()); err != nil {
			log.Warn("Run observer failed", map[string]interface{}{"error": err.Error()})
		}
	}
	log.Info("Run phase", map[string]interface{}{
		"phase":     PhaseTerminal,
		"success":   run.Success,
		"deployed":  run.Deployed,
		"cleanedUp": run.CleanedUp,
	})
}

func notify(ctx context.Context, o Observer, run models.GenerationRun) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return o.RunCompleted(ctx, run)
}

// Results returns the history in completion order.
func (t *Tracker) Results(ctx context.Context) ([]models.GenerationRun, error) {
	return t.store.List(ctx)
}

func (t *Tracker) Summary(ctx context.Context) (Summary, error) {
	runs, err := t.store.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(runs), nil
}

// Clear drops the history.
func (t *Tracker) Clear(ctx context.Context) error {
	return t.store.Clear(ctx)
}
