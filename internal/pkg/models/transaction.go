package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the payment state of a transaction. Status only moves
// forward: pending -> initialized -> success/failed/cancelled. Terminal
// states are absorbing.
type TransactionStatus string

const (
	TransactionStatusPending     TransactionStatus = "pending"
	TransactionStatusInitialized TransactionStatus = "initialized"
	TransactionStatusSuccess     TransactionStatus = "success"
	TransactionStatusFailed      TransactionStatus = "failed"
	TransactionStatusCancelled   TransactionStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// ReconcileSource identifies the channel that delivered a gateway outcome
type ReconcileSource string

const (
	SourceClientVerify ReconcileSource = "client_verify"
	SourceWebhook      ReconcileSource = "webhook"
)

// Transaction is the durable record of a payment attempt. Reference is the
// client-generated idempotency key; it is assigned once at creation and
// never reused. Rows are never deleted, only transitioned.
type Transaction struct {
	Reference              string            `json:"reference" db:"reference"`
	BookingID              uuid.UUID         `json:"booking_id" db:"booking_id"`
	GatewayTransactionID   sql.NullString    `json:"gateway_transaction_id" db:"gateway_transaction_id"`
	Amount                 float64           `json:"amount" db:"amount"`
	Currency               string            `json:"currency" db:"currency"`
	Method                 string            `json:"method" db:"method"`
	Status                 TransactionStatus `json:"status" db:"status"`
	RawVerificationPayload json.RawMessage   `json:"-" db:"raw_verification_payload"`
	PaidAt                 *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	NotificationEnqueued   bool              `json:"-" db:"notification_enqueued"`
	CreatedAt              time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at" db:"updated_at"`
}

// InitiatePaymentRequest is the payload for initiating a payment
type InitiatePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
	Method    string    `json:"method" validate:"required,oneof=card bank mobile_money"`
	Currency  string    `json:"currency" validate:"omitempty,len=3"`
}

// InitiatePaymentResponse carries the hosted-payment redirect target
type InitiatePaymentResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirect_url"`
}

// VerifyPaymentRequest is the payload for client-initiated verification
type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// CancelPaymentRequest is the payload for cancelling a payment before an outcome
type CancelPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// ReconcileResult reports the transaction state after a reconciliation pass.
// Settled is false when the gateway could not be authoritatively consulted;
// the caller should try again later.
type ReconcileResult struct {
	Reference string            `json:"reference"`
	Status    TransactionStatus `json:"status"`
	Settled   bool              `json:"settled"`
}

// TransactionStatusResponse is the read-only projection of a transaction
type TransactionStatusResponse struct {
	Reference            string            `json:"reference"`
	BookingID            uuid.UUID         `json:"booking_id"`
	GatewayTransactionID string            `json:"gateway_transaction_id,omitempty"`
	Amount               float64           `json:"amount"`
	Currency             string            `json:"currency"`
	Method               string            `json:"method"`
	Status               TransactionStatus `json:"status"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
}
