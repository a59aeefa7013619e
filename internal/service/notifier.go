package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/internal/model"
	"github.com/salhdl/AI-Agent/internal/repository"
)

// Notifier delivers a human-readable message to a recipient address.
// Delivery is fire-and-forget from the caller's point of view: a failed
// send never rolls back the state that triggered it.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// notifyTimeout bounds one delivery attempt so a stuck SMTP exchange
// cannot hold an HTTP request open.
const notifyTimeout = 10 * time.Second

// sendAndLog delivers a message with one immediate retry and records the
// attempt in the notification audit log. The audit write itself is
// best-effort: losing the log entry must not fail the business operation.
func sendAndLog(
	ctx context.Context,
	notifRepo repository.NotificationRepository,
	notifier Notifier,
	logger *zap.Logger,
	kind string,
	requestID *string,
	to, subject, body string,
) error {
	sendCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	err := notifier.Send(sendCtx, to, subject, body)
	if err != nil && sendCtx.Err() == nil {
		// one immediate retry for transient failures; no backoff in this
		// synchronous, human-triggered flow
		err = notifier.Send(sendCtx, to, subject, body)
	}

	entry := &model.NotificationLog{
		Recipient: to,
		Subject:   subject,
		Kind:      kind,
		RequestID: requestID,
		Delivered: err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if logErr := notifRepo.Create(ctx, entry); logErr != nil {
		logger.Error("write notification log failed",
			zap.String("recipient", to),
			zap.String("kind", kind),
			zap.Error(logErr),
		)
	}

	return err
}
