package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"mehfil/models"
	"mehfil/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeMailSend = "mail:send"
	mailRetries  = 5
)

// NewMailTask wraps a mail payload in an asynq task.
func NewMailTask(payload models.MailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMailSend, b)
	opts := []asynq.Option{asynq.MaxRetry(mailRetries)}

	return task, opts, nil
}

// Enqueuer is the part of asynq.Client the dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// MailDispatcher implements notification.Mailer by queueing mail tasks.
// With no queue configured it delivers inline.
type MailDispatcher struct {
	Queue  Enqueuer
	Inline notification.Deliverer
	Logger *zap.Logger
}

func (d *MailDispatcher) dispatch(ctx context.Context, p models.MailPayload) error {
	if d.Queue == nil {
		if d.Inline == nil {
			return fmt.Errorf("mail delivery is not configured")
		}
		return d.Inline.Deliver(ctx, p)
	}

	task, opts, err := NewMailTask(p)
	if err != nil {
		return fmt.Errorf("failed to build mail task: %w", err)
	}
	info, err := d.Queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s mail: %w", p.Kind, err)
	}
	if d.Logger != nil {
		d.Logger.Debug("Mail task enqueued", zap.String("kind", p.Kind), zap.String("taskID", info.ID))
	}
	return nil
}

func (d *MailDispatcher) SendVerification(ctx context.Context, to, name, token string) error {
	return d.dispatch(ctx, models.MailPayload{Kind: models.MailVerification, To: to, Name: name, Token: token})
}

func (d *MailDispatcher) SendPasswordReset(ctx context.Context, to, name, token string) error {
	return d.dispatch(ctx, models.MailPayload{Kind: models.MailPasswordReset, To: to, Name: name, Token: token})
}

func (d *MailDispatcher) SendBookingConfirmation(ctx context.Context, to, name string, booking *models.Booking) error {
	return d.dispatch(ctx, models.MailPayload{Kind: models.MailBookingConfirmation, To: to, Name: name, Booking: booking})
}

// HandleMailTask decodes a mail task and hands it to the deliverer.
func HandleMailTask(deliverer notification.Deliverer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			// Malformed payloads never succeed on retry.
			return fmt.Errorf("invalid mail payload: %v: %w", err, asynq.SkipRetry)
		}
		return deliverer.Deliver(ctx, p)
	}
}
