package generatesite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/presets"
	"sitegen-workers/internal/tracker"
)

const TaskType = "generate-site"

// Runner is satisfied by *tracker.Tracker.
type Runner interface {
	RunTestGeneration(ctx context.Context, presetID string, opts tracker.RunOptions) (*models.GenerationRun, error)
	RunPreset(ctx context.Context, p models.GenerationPreset, opts tracker.RunOptions) *models.GenerationRun
}

type Handler struct {
	config       *Config
	runner       Runner
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, runner Runner, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		runner:       runner,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
	}
}

// Handle completes the job with the run record, failed runs included.
// Only input that never produced a run fails the job.
func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job,
			errors.NewValidationError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	opts := tracker.RunOptions{
		Deploy:    input.Deploy,
		Cleanup:   input.Cleanup,
		LocalOnly: input.LocalOnly,
	}

	var run *models.GenerationRun
	switch {
	case input.Preset != nil:
		if err := presets.Validate(*input.Preset); err != nil {
			return nil, err
		}
		run = h.runner.RunPreset(ctx, *input.Preset, opts)
	case input.PresetID != "":
		var err error
		run, err = h.runner.RunTestGeneration(ctx, input.PresetID, opts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.NewValidationError("either presetId or preset is required")
	}

	h.logger.Info("generation finished", map[string]interface{}{
		"runId":    run.ID,
		"presetId": run.PresetID,
		"success":  run.Success,
		"path":     run.Path,
	})
	return &Output{
		Success:      run.Success,
		RunID:        run.ID,
		ArtifactName: run.ArtifactName,
		Run:          *run,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err.Error()})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err.Error()})
	}
}
