package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sitegen-workers/internal/app"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/notify"
	"sitegen-workers/internal/tracker"
)

type runOptions struct {
	deploy      bool
	cleanup     bool
	localOnly   bool
	concurrency int
	asJSON      bool
}

type runReport struct {
	Summary tracker.Summary         `json:"summary"`
	Runs    []*models.GenerationRun `json:"runs"`
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [preset-id]...",
		Short: "Run presets through the generation engine",
		Long:  `Runs the named presets, or every preset in the catalog when none are named. Exits non-zero when any run fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.deploy, "deploy", false, "Deploy each successful project")
	cmd.Flags().BoolVar(&opts.cleanup, "cleanup", false, "Remove each project after the run")
	cmd.Flags().BoolVar(&opts.localOnly, "local-only", false, "Only remove local files during cleanup")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Runs in flight (defaults to generation.batch_concurrency)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the summary and runs as JSON")
	return cmd
}

func runPresets(cmd *cobra.Command, root *rootOptions, opts *runOptions, ids []string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if opts.concurrency > 0 {
		cfg.Generation.BatchConcurrency = opts.concurrency
	}

	ctx := cmd.Context()
	engine, err := app.Build(ctx, cfg, root.logger(), app.Options{})
	if err != nil {
		return err
	}
	defer engine.Close()

	if len(ids) == 0 {
		ids = routablePresets(engine, root.logger())
	}

	runs, err := engine.RunBatch(ctx, ids, tracker.RunOptions{
		Deploy:    opts.deploy,
		Cleanup:   opts.cleanup,
		LocalOnly: opts.localOnly,
	})
	if err != nil {
		return err
	}

	batch := make([]models.GenerationRun, 0, len(runs))
	for _, r := range runs {
		batch = append(batch, *r)
	}
	summary := tracker.Summarize(batch)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(runReport{Summary: summary, Runs: runs}); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, notify.BatchReport(summary, runs))
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d runs failed", summary.Failed, summary.Total)
	}
	return nil
}

// routablePresets lists the catalog ids whose backend path is configured.
// Named presets are never filtered; they fail with a routing error instead.
func routablePresets(engine *app.App, log logger.Logger) []string {
	var ids, skipped []string
	for _, p := range engine.Presets.List() {
		if engine.Router.Supports(p) {
			ids = append(ids, p.ID)
			continue
		}
		skipped = append(skipped, p.ID)
	}
	if len(skipped) > 0 {
		log.Warn("Skipping presets with no configured backend", map[string]interface{}{
			"presets": skipped,
			"backend": engine.Config.Generation.Backend,
		})
	}
	return ids
}
