package gateway

import (
	"fmt"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	nsqpkg "github.com/wayfare-app/wayfare/internal/pkg/nsq"
)

// EventsGW publishes the engine's asynchronous side effects to NSQ
type EventsGW struct {
	producer     *nsqpkg.Producer
	webhookTopic string
	notifyTopic  string
}

// NewEventsGW creates a new NSQ-backed events publisher
func NewEventsGW(producer *nsqpkg.Producer, cfg models.NSQConfig) *EventsGW {
	return &EventsGW{
		producer:     producer,
		webhookTopic: cfg.WebhookTopic,
		notifyTopic:  cfg.NotifyTopic,
	}
}

// PublishWebhookEvent enqueues a validated gateway webhook for asynchronous
// reconciliation
func (g *EventsGW) PublishWebhookEvent(event *models.WebhookEvent) error {
	if err := g.producer.Publish(g.webhookTopic, event); err != nil {
		return fmt.Errorf("failed to publish webhook event for %s: %w", event.Reference, err)
	}
	return nil
}

// PublishNotificationEvent enqueues a notification job for the dispatcher
func (g *EventsGW) PublishNotificationEvent(event *models.PaymentNotificationEvent) error {
	if err := g.producer.Publish(g.notifyTopic, event); err != nil {
		return fmt.Errorf("failed to publish notification event for %s: %w", event.Reference, err)
	}
	return nil
}
