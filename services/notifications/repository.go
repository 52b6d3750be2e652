package notifications

import (
	"context"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// NotificationRepo records undeliverable notifications for later inspection
type NotificationRepo interface {
	RecordFailure(ctx context.Context, failure *models.NotificationFailure) error
}

// Mailer sends a single payment email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendPaymentEmail(event *models.PaymentNotificationEvent) error
}
