package nsq

import (
	"context"
	"time"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	nsqpkg "github.com/wayfare-app/wayfare/internal/pkg/nsq"
	"github.com/wayfare-app/wayfare/services/notifications"
)

const dispatchTimeout = 2 * time.Minute

// NotifyConsumer pulls payment events off the queue and hands them to the
// dispatcher
type NotifyConsumer struct {
	notificationUC notifications.NotificationUC
}

// NewNotifyConsumer creates a new notification consumer handler
func NewNotifyConsumer(notificationUC notifications.NotificationUC) *NotifyConsumer {
	return &NotifyConsumer{notificationUC: notificationUC}
}

// HandleMessage dispatches a single payment notification event. Retrying and
// failure recording happen inside the dispatcher; an error here means the
// failure record itself could not be written, and the message is requeued.
func (h *NotifyConsumer) HandleMessage(message []byte) error {
	var event models.PaymentNotificationEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.ErrorLog("Dropping malformed notification event", logger.Err(err))
		return nil
	}
	if event.Reference == "" || event.CustomerEmail == "" {
		logger.Warn("Dropping notification event without reference or recipient")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	return h.notificationUC.DispatchPaymentEvent(ctx, &event)
}
