// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"sitegen-workers/deployments"
	"sitegen-workers/internal/app"
	"sitegen-workers/internal/common/camunda"
	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/observability"

	gs "sitegen-workers/internal/workers/generation/generate-site"
	sl "sitegen-workers/internal/workers/generation/select-layout"
	sr "sitegen-workers/internal/workers/generation/summarize-runs"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...", zap.String("environment", cfg.App.Environment))

	if err := config.ValidateForWorkers(cfg); err != nil {
		zapLog.Fatal("invalid worker configuration", zap.Error(err))
	}

	var traceOpts []sdktrace.TracerProviderOption
	if cfg.Metrics.JaegerEndpoint != "" {
		opt, err := observability.WithJaeger(cfg.Metrics.JaegerEndpoint)
		if err != nil {
			zapLog.Fatal("tracing setup failed", zap.Error(err))
		}
		traceOpts = append(traceOpts, opt)
		zapLog.Info("Exporting traces to Jaeger", zap.String("endpoint", cfg.Metrics.JaegerEndpoint))
	}
	obs := observability.New(cfg.App.Name, nil, traceOpts...)
	obs.Install()
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Generation engine: presets, backends, router, store, tracker ---
	var engine *app.App
	err = retryWithBackoff(func() error {
		var err error
		engine, err = app.Build(ctx, cfg, log, app.Options{Tracer: obs.Tracer()})
		return err
	}, 10, 2*time.Second, zapLog, "Generation engine initialization")
	if err != nil {
		zapLog.Fatal("generation engine failed after retries", zap.Error(err))
	}
	defer engine.Close()

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(camunda.ConfigFrom(cfg.Camunda))
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Deploy BPMN ---
	resources, err := deployments.Resources()
	if err != nil {
		zapLog.Fatal("failed to read embedded processes", zap.Error(err))
	}
	for _, res := range resources {
		key, err := zeebe.DeployProcess(ctx, res.Name, res.Definition)
		if err != nil {
			zapLog.Error("Process deployment failed", zap.String("resource", res.Name), zap.Error(err))
			continue
		}
		zapLog.Info("Process deployed", zap.String("resource", res.Name), zap.Int64("deploymentKey", key))
	}

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker
	start := func(taskType string, handler camunda.JobHandler) {
		if !config.IsWorkerEnabled(cfg, taskType) {
			zapLog.Info("worker disabled", zap.String("taskType", taskType))
			return
		}
		wcfg := config.GetWorkerConfig(cfg, taskType)
		w := camunda.NewWorker(zeebe.GetClient(), taskType, wcfg.MaxJobsActive, config.GetDuration(wcfg.Timeout),
			camunda.Instrument(obs, taskType, handler), log)
		w.Start()
		workers = append(workers, w)
	}

	gsCfg := gs.LoadConfig()
	if w, ok := cfg.Workers[gs.TaskType]; ok && w.Timeout > 0 {
		gsCfg.Timeout = config.GetDuration(w.Timeout)
	}
	start(gs.TaskType, gs.NewHandler(gsCfg, engine.Tracker, log))
	start(sl.TaskType, sl.NewHandler(sl.LoadConfig(), log))
	start(sr.TaskType, sr.NewHandler(sr.LoadConfig(), engine.Tracker, log))

	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": cfg.App.Name,
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		hctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := zeebe.HealthCheck(hctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		s, err := engine.Tracker.Summary(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(s)
	})
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	srv := &http.Server{Addr: cfg.Metrics.Address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
