// Package notify tells operators about failed runs and finished batches.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	appaws "sitegen-workers/internal/common/aws"
	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/tracker"
)

// Publisher is satisfied by *aws.SNSClient.
type Publisher interface {
	Publish(ctx context.Context, in *sns.PublishInput) (*sns.PublishOutput, error)
}

// Mailer is satisfied by *aws.SESClient.
type Mailer interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type Config struct {
	TopicARN  string
	FromEmail string
	To        []string
}

// Notifier publishes failed runs to SNS and mails batch summaries through SES.
// Either channel may be nil.
type Notifier struct {
	cfg    Config
	pub    Publisher
	mailer Mailer
	log    logger.Logger
}

func New(cfg Config, pub Publisher, mailer Mailer, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Notifier{cfg: cfg, pub: pub, mailer: mailer, log: log}
}

// RunCompleted publishes a message for a failed run. Successful runs are ignored.
func (n *Notifier) RunCompleted(ctx context.Context, run models.GenerationRun) error {
	if run.Success || n.pub == nil || n.cfg.TopicARN == "" {
		return nil
	}

	subject := truncate(fmt.Sprintf("Generation failed: %s", run.PresetID), 100)
	body := fmt.Sprintf("Run %s (preset %s, mode %s, path %s) failed after %dms.\n\n%s\n",
		run.ID, run.PresetID, run.Mode, run.Path, run.Duration, run.Error)
	attrs := map[string]string{
		"runId":    run.ID,
		"presetId": run.PresetID,
		"mode":     run.Mode,
	}

	if _, err := n.pub.Publish(ctx, appaws.TopicMessage(n.cfg.TopicARN, subject, body, attrs)); err != nil {
		n.log.Warn("Failed run notification not sent", map[string]interface{}{
			"runId": run.ID,
			"error": err.Error(),
		})
		return errors.NewNotificationSendFailedError("sns", err)
	}
	return nil
}

// BatchFinished mails the summary of a batch to the configured recipients.
func (n *Notifier) BatchFinished(ctx context.Context, summary tracker.Summary, runs []*models.GenerationRun) error {
	if n.mailer == nil || n.cfg.FromEmail == "" || len(n.cfg.To) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Generation batch: %d/%d passed", summary.Passed, summary.Total)
	if _, err := n.mailer.SendEmail(ctx, appaws.TextEmail(n.cfg.FromEmail, n.cfg.To, subject, BatchReport(summary, runs))); err != nil {
		n.log.Warn("Batch summary email not sent", map[string]interface{}{"error": err.Error()})
		return errors.NewNotificationSendFailedError("ses", err)
	}
	return nil
}

// BatchReport renders the plain-text body of a batch email.
func BatchReport(s tracker.Summary, runs []*models.GenerationRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d\nPassed: %d\nFailed: %d\nPass rate: %s\n", s.Total, s.Passed, s.Failed, s.PassRate)
	fmt.Fprintf(&b, "Total duration: %s\nAverage duration: %s\nTotal cost: %s\n", s.TotalDuration, s.AverageDuration, s.TotalCost)

	if len(runs) > 0 {
		b.WriteString("\nRuns:\n")
	}
	for _, r := range runs {
		if r == nil {
			continue
		}
		status := "PASS"
		if !r.Success {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  [%s] %s %s (%dms)", status, r.PresetID, r.ArtifactName, r.Duration)
		if r.Error != "" {
			fmt.Fprintf(&b, ": %s", r.Error)
		}
		if r.DeployError != "" {
			fmt.Fprintf(&b, " [deploy: %s]", r.DeployError)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
