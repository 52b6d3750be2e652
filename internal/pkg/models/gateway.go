package models

import "encoding/json"

// GatewayOutcome is the authoritative verdict reported by the gateway for a
// transaction. Anything other than success/failed means the payment is still
// in flight.
type GatewayOutcome string

const (
	GatewayOutcomeSuccess GatewayOutcome = "success"
	GatewayOutcomeFailed  GatewayOutcome = "failed"
	GatewayOutcomePending GatewayOutcome = "pending"
)

// GatewayInitRequest is the request to initialize a hosted-payment
// transaction. The gateway client owns the wire encoding.
type GatewayInitRequest struct {
	Reference     string
	Amount        float64
	Currency      string
	Method        string
	CustomerEmail string
	CustomerName  string
	Description   string
}

// GatewayInitResponse carries the gateway-assigned transaction id and the
// hosted checkout page the user is redirected to
type GatewayInitResponse struct {
	GatewayTransactionID string
	RedirectURL          string
}

// GatewayVerifyResult is the outcome of a fresh authoritative verify call.
// RawPayload is the gateway's response body, stored for audit.
type GatewayVerifyResult struct {
	Outcome    GatewayOutcome
	RawPayload json.RawMessage
}

// WebhookEvent is the gateway-pushed payment event as enqueued for async
// reconciliation. Status is the payload's self-reported status; it is a hint
// only and is never applied without a fresh verify call.
type WebhookEvent struct {
	Reference  string `json:"tx_ref"`
	Status     string `json:"status"`
	ReceivedAt int64  `json:"received_at"`
}

// NotificationKind distinguishes the email templates the dispatcher renders
type NotificationKind string

const (
	NotificationPaymentConfirmed NotificationKind = "payment_confirmed"
	NotificationPaymentFailed    NotificationKind = "payment_failed"
)

// PaymentNotificationEvent is published exactly once per terminal transition
// and consumed by the notification dispatcher
type PaymentNotificationEvent struct {
	Kind          NotificationKind `json:"kind"`
	Reference     string           `json:"reference"`
	BookingID     string           `json:"booking_id"`
	Destination   string           `json:"destination"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	Amount        float64          `json:"amount"`
	Currency      string           `json:"currency"`
}
