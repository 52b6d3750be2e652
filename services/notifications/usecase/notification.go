package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/internal/pkg/retry"
	"github.com/wayfare-app/wayfare/services/notifications"
)

// NotificationUC implements the notifications.NotificationUC interface. It
// is fully decoupled from the payment engine: delivery failures end in a
// durable failure record, never in a payment state change.
type NotificationUC struct {
	cfg     *models.Config
	repo    notifications.NotificationRepo
	mailer  notifications.Mailer
	retrier *retry.Retrier
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	cfg *models.Config,
	repo notifications.NotificationRepo,
	mailer notifications.Mailer,
	l *logger.ZapLogger,
) notifications.NotificationUC {
	// The config loader owns the retry defaults. Zero is a valid budget
	// meaning a single attempt, so it is passed through as-is; the delay
	// knobs fall back only when left unset.
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Notification.MaxRetries
	if cfg.Notification.BaseDelayMs > 0 {
		retryCfg.BaseDelay = time.Duration(cfg.Notification.BaseDelayMs) * time.Millisecond
	}
	if cfg.Notification.MaxDelaySec > 0 {
		retryCfg.MaxDelay = time.Duration(cfg.Notification.MaxDelaySec) * time.Second
	}
	if cfg.Notification.Multiplier > 0 {
		retryCfg.Multiplier = cfg.Notification.Multiplier
	}

	return &NotificationUC{
		cfg:     cfg,
		repo:    repo,
		mailer:  mailer,
		retrier: retry.New(retryCfg, l),
	}
}

// DispatchPaymentEvent sends the email for a terminal payment transition with
// exponential-backoff retries. An exhausted retry budget is recorded as a
// notification_failures row and the event is dropped; the returned error is
// non-nil only when even that record could not be written.
func (uc *NotificationUC) DispatchPaymentEvent(ctx context.Context, event *models.PaymentNotificationEvent) error {
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.mailer.SendPaymentEmail(event)
	})
	if err == nil {
		logger.Info("Payment email sent",
			logger.String("reference", event.Reference),
			logger.String("kind", string(event.Kind)),
			logger.String("recipient", event.CustomerEmail))
		return nil
	}

	logger.ErrorLog("Payment email undeliverable, recording failure",
		logger.String("reference", event.Reference),
		logger.String("kind", string(event.Kind)),
		logger.Err(err))

	failure := &models.NotificationFailure{
		Reference: event.Reference,
		Recipient: event.CustomerEmail,
		Kind:      event.Kind,
		Reason:    err.Error(),
		Attempts:  uc.cfg.Notification.MaxRetries + 1,
	}
	if rerr := uc.repo.RecordFailure(ctx, failure); rerr != nil {
		return fmt.Errorf("failed to record notification failure for %s: %w", event.Reference, rerr)
	}

	return nil
}
