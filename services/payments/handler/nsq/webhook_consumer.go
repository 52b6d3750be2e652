package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	nsqpkg "github.com/wayfare-app/wayfare/internal/pkg/nsq"
	"github.com/wayfare-app/wayfare/services/payments"
)

const reconcileTimeout = 30 * time.Second

// WebhookConsumer drives asynchronous reconciliation of gateway webhook
// events pulled off the queue
type WebhookConsumer struct {
	paymentUC payments.PaymentUC
}

// NewWebhookConsumer creates a new webhook consumer handler
func NewWebhookConsumer(paymentUC payments.PaymentUC) *WebhookConsumer {
	return &WebhookConsumer{paymentUC: paymentUC}
}

// HandleMessage reconciles a single webhook event. Returning an error
// requeues the message, so transient conditions (lock held, gateway
// unreachable, outcome still pending) are retried while poison messages
// (unknown reference, malformed body) are dropped.
func (h *WebhookConsumer) HandleMessage(message []byte) error {
	var event models.WebhookEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.ErrorLog("Dropping malformed webhook event", logger.Err(err))
		return nil
	}
	if event.Reference == "" {
		logger.Warn("Dropping webhook event without reference")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	result, err := h.paymentUC.Reconcile(ctx, event.Reference, models.SourceWebhook)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownReference) {
			// Webhook for a reference we never initialized: log and drop,
			// requeueing would never succeed.
			logger.Warn("Discarding webhook for unknown reference",
				logger.String("reference", event.Reference))
			return nil
		}
		return fmt.Errorf("failed to reconcile %s: %w", event.Reference, err)
	}

	if !result.Settled {
		// Not an outcome yet; requeue and try again later.
		return fmt.Errorf("%w: %s still %s", payments.ErrVerificationPending, event.Reference, result.Status)
	}

	logger.Info("Webhook reconciliation settled",
		logger.String("reference", event.Reference),
		logger.String("status", string(result.Status)))
	return nil
}
