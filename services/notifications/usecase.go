package notifications

import (
	"context"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// NotificationUC defines the interface for the notification dispatcher. It
// consumes payment events and sends the matching email; it never reads or
// writes payment state.
type NotificationUC interface {
	// DispatchPaymentEvent sends the email for a terminal payment transition,
	// retrying with backoff. Once the retry budget is exhausted the failure
	// is recorded durably and the event is considered handled.
	DispatchPaymentEvent(ctx context.Context, event *models.PaymentNotificationEvent) error
}
