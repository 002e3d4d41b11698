package camunda

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"sitegen-workers/internal/common/observability"
)

// JobHandlerFunc adapts a function to JobHandler.
type JobHandlerFunc func(client worker.JobClient, job entities.Job)

func (f JobHandlerFunc) Handle(client worker.JobClient, job entities.Job) {
	f(client, job)
}

// Instrument wraps h in a span per job and records otel job metrics.
// Status is "completed" when the handler returns and "panicked" when it does not.
func Instrument(obs *observability.Observability, taskType string, h JobHandler) JobHandler {
	return JobHandlerFunc(func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		ctx, span := obs.StartSpan(context.Background(), taskType,
			attribute.Int64("job.key", job.GetKey()),
			attribute.String("process.id", job.GetBpmnProcessId()),
		)
		status := "panicked"
		defer func() {
			obs.RecordJobProcessed(ctx, taskType, status)
			obs.RecordJobDuration(ctx, taskType, time.Since(start), status)
			span.SetAttributes(attribute.String("job.status", status))
			span.End()
		}()

		h.Handle(client, job)
		status = "completed"
	})
}
