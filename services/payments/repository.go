package payments

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// PaymentRepo defines the transaction ledger operations. Every status
// transition is an atomic conditional update guarded on the expected current
// status; the boolean result reports whether this caller performed the
// transition. The derived booking confirmation status is written in the same
// database transaction.
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetTransactionByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Transaction, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// MarkInitialized moves pending -> initialized, storing the gateway
	// transaction id
	MarkInitialized(ctx context.Context, reference, gatewayTransactionID string) (bool, error)

	// CompleteTransaction moves initialized -> success, sets paid_at, stores
	// the raw verification payload, flips the one-time notification flag and
	// confirms the booking, all atomically
	CompleteTransaction(ctx context.Context, reference string, raw json.RawMessage, paidAt time.Time) (bool, error)

	// FailTransaction moves pending/initialized -> failed and marks the
	// booking payment_failed
	FailTransaction(ctx context.Context, reference string, raw json.RawMessage) (bool, error)

	// CancelTransaction moves initialized -> cancelled and cancels the booking
	CancelTransaction(ctx context.Context, reference string) (bool, error)
}

// ReferenceLocker serializes reconciliation per reference. Release must be
// called by the lock holder; the TTL bounds staleness if the holder dies.
type ReferenceLocker interface {
	Lock(ctx context.Context, reference string) (release func(), acquired bool, err error)
}
