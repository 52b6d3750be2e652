package payments

import (
	"context"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// PaymentGW is the thin protocol adapter for the external payment gateway.
// It holds no state of its own.
type PaymentGW interface {
	// Initialize starts a hosted-payment transaction with the gateway
	Initialize(ctx context.Context, req *models.GatewayInitRequest) (*models.GatewayInitResponse, error)

	// Verify queries the gateway for a transaction's true status. It is
	// authoritative and must be called fresh for every reconciliation.
	Verify(ctx context.Context, reference string) (*models.GatewayVerifyResult, error)

	// ValidateWebhookSignature checks the shared-secret HMAC of an inbound
	// webhook body
	ValidateWebhookSignature(rawBody []byte, signatureHeader string) bool
}

// PaymentEvents publishes the engine's asynchronous side effects
type PaymentEvents interface {
	PublishWebhookEvent(event *models.WebhookEvent) error
	PublishNotificationEvent(event *models.PaymentNotificationEvent) error
}
