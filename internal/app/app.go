// Package app wires configuration into a ready tracker: presets, backends, router,
// run store, observers and notifications.
package app

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"

	appaws "sitegen-workers/internal/common/aws"
	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/database"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/metrics"
	"sitegen-workers/internal/backend"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/notify"
	"sitegen-workers/internal/presets"
	"sitegen-workers/internal/router"
	"sitegen-workers/internal/runstore"
	"sitegen-workers/internal/tracker"
)

type App struct {
	Config   *config.Config
	Presets  *presets.Registry
	Backends *backend.Set
	Router   *router.Router
	Tracker  *tracker.Tracker
	Notifier *notify.Notifier

	log     logger.Logger
	closers []func() error
}

// Options overrides process-wide defaults, mostly for tests.
type Options struct {
	// FS backs the local project writer. Nil means the OS filesystem.
	FS       afero.Fs
	Recorder tracker.Recorder
	Tracer   trace.Tracer
	// Store replaces the configured store driver.
	Store tracker.RunStore
	// Publisher and Mailer replace the AWS clients; setting one enables that channel.
	Publisher notify.Publisher
	Mailer    notify.Mailer
}

// Build connects every configured dependency. Close releases them.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger, opts Options) (*App, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	a := &App{Config: cfg, log: log}

	a.Presets = presets.Default()
	n, err := presets.LoadInto(a.Presets, cfg.Generation.PresetsPath)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	if n > 0 {
		log.Info("Presets loaded", map[string]interface{}{"path": cfg.Generation.PresetsPath, "count": n})
	}

	a.Backends, err = backend.NewSet(cfg.Generation, opts.FS, log)
	if err != nil {
		return nil, err
	}

	routerOpts := []router.Option{
		router.WithTimeout(config.GetDuration(cfg.Generation.Timeout)),
		router.WithLogger(log),
		router.WithRebuilder(a.Backends.Rebuilder),
	}
	if opts.Tracer != nil {
		routerOpts = append(routerOpts, router.WithTracer(opts.Tracer))
	}
	a.Router = router.New(a.Backends.Assembler, a.Backends.Orchestrator, routerOpts...)

	store := opts.Store
	if store == nil {
		if store, err = a.openStore(ctx); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	observers, err := a.observers(ctx, opts)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.Generation
	}

	a.Tracker = tracker.New(a.Router, a.Presets,
		tracker.WithStore(store),
		tracker.WithDeployer(a.Backends.Deployer),
		tracker.WithCleaner(a.Backends.Cleaner),
		tracker.WithObserver(observers...),
		tracker.WithRecorder(recorder),
		tracker.WithPhaseTimeout(config.GetDuration(cfg.Generation.PhaseTimeout)),
		tracker.WithLogger(log),
	)

	log.Info("Generation engine ready", map[string]interface{}{
		"backend":   a.Backends.Kind,
		"store":     cfg.Store.Driver,
		"presets":   len(a.Presets.List()),
		"observers": len(observers),
	})
	return a, nil
}

func (a *App) openStore(ctx context.Context) (tracker.RunStore, error) {
	var b runstore.Backends
	switch a.Config.Store.Driver {
	case runstore.DriverRedis:
		rc, err := database.NewRedis(a.Config.Database.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc.Close)
		if err := rc.Ping(ctx); err != nil {
			return nil, err
		}
		b.Redis = rc.Cmdable()
	case runstore.DriverPostgres:
		pg, err := database.NewPostgres(a.Config.Database.Postgres)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pg.Close)
		if err := pg.Ping(ctx); err != nil {
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		b.Postgres = pg.DB
	}
	return runstore.Open(ctx, a.Config.Store, b)
}

func (a *App) observers(ctx context.Context, opts Options) ([]tracker.Observer, error) {
	var out []tracker.Observer

	if a.Config.Store.IndexRuns {
		es, err := database.NewElasticsearch(a.Config.Database.Elasticsearch)
		if err != nil {
			return nil, err
		}
		if err := es.Ping(ctx); err != nil {
			return nil, err
		}
		out = append(out, runstore.NewElasticIndexer(es.Client, a.Config.Database.Elasticsearch.RunsIndex))
	}

	nc := a.Config.Notifications
	pub, mailer := opts.Publisher, opts.Mailer
	if pub == nil && nc.SNS.Enabled {
		c, err := appaws.NewSNSClient(ctx, nc.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("sns client: %w", err)
		}
		pub = c
	}
	if mailer == nil && nc.Email.Enabled {
		c, err := appaws.NewSESClient(ctx, nc.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("ses client: %w", err)
		}
		mailer = c
	}
	a.Notifier = notify.New(notify.Config{
		TopicARN:  nc.SNS.TopicARN,
		FromEmail: nc.Email.FromEmail,
		To:        nc.Email.To,
	}, pub, mailer, a.log)
	if pub != nil {
		out = append(out, a.Notifier)
	}
	return out, nil
}

// RunBatch runs ids through the tracker and mails the batch summary when email is configured.
func (a *App) RunBatch(ctx context.Context, ids []string, opts tracker.RunOptions) ([]*models.GenerationRun, error) {
	runs, err := a.Tracker.RunBatch(ctx, ids, opts, a.Config.Generation.BatchConcurrency)
	if err != nil {
		return nil, err
	}

	batch := make([]models.GenerationRun, 0, len(runs))
	for _, r := range runs {
		batch = append(batch, *r)
	}
	if err := a.Notifier.BatchFinished(ctx, tracker.Summarize(batch), runs); err != nil {
		a.log.Warn("Batch notification failed", map[string]interface{}{"error": err.Error()})
	}
	return runs, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return stderrors.Join(errs...)
}
