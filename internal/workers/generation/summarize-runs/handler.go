package summarizeruns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/tracker"
)

const TaskType = "summarize-runs"

// History is satisfied by *tracker.Tracker.
type History interface {
	Summary(ctx context.Context) (tracker.Summary, error)
	Clear(ctx context.Context) error
}

type Handler struct {
	config       *Config
	history      History
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, history History, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		history:      history,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if job.Variables != "" {
		if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
			h.errorHandler.HandleJobError(context.Background(), client, job,
				errors.NewValidationError(fmt.Sprintf("parse input: %v", err)))
			return
		}
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
	summary, err := h.history.Summary(ctx)
	if err != nil {
		return nil, err
	}
	out := &Output{Summary: summary}
	if input.Clear {
		if err := h.history.Clear(ctx); err != nil {
			return nil, err
		}
		out.Cleared = true
	}

	h.logger.Info("runs summarized", map[string]interface{}{
		"total":    summary.Total,
		"passRate": summary.PassRate,
		"cleared":  out.Cleared,
	})
	return out, nil
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
