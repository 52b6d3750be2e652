package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// PaymentRepo is the sqlx-backed transaction ledger. Status transitions are
// conditional updates guarded on the expected current status; the booking's
// derived confirmation status is written inside the same database
// transaction so both succeed or roll back together.
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new transaction in pending state
func (r *PaymentRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			reference, booking_id, gateway_transaction_id, amount, currency,
			method, status, notification_enqueued, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $9)
	`

	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		tx.Reference,
		tx.BookingID,
		tx.GatewayTransactionID,
		tx.Amount,
		tx.Currency,
		tx.Method,
		tx.Status,
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction %s: %w", tx.Reference, err)
	}

	return nil
}

const transactionColumns = `
	reference, booking_id, gateway_transaction_id, amount, currency, method,
	status, raw_verification_payload, paid_at, notification_enqueued,
	created_at, updated_at
`

// GetTransactionByReference retrieves a transaction by its reference.
// Returns nil when no transaction exists.
func (r *PaymentRepo) GetTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`

	tx, err := r.scanTransaction(r.db.QueryRowContext(ctx, query, reference))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", reference, err)
	}
	return tx, nil
}

// GetTransactionByBookingID retrieves the booking's transaction, if any
func (r *PaymentRepo) GetTransactionByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE booking_id = $1`

	tx, err := r.scanTransaction(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction for booking %s: %w", bookingID, err)
	}
	return tx, nil
}

// GetBookingByID retrieves a booking. Returns nil when no booking exists.
func (r *PaymentRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, destination, customer_name, customer_email, check_in_date,
			check_out_date, guests, total_amount, currency,
			confirmation_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.Destination,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Guests,
		&booking.TotalAmount,
		&booking.Currency,
		&booking.ConfirmationStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
	}

	return booking, nil
}

// MarkInitialized moves pending -> initialized, storing the gateway
// transaction id. Returns false when the transaction was not pending.
func (r *PaymentRepo) MarkInitialized(ctx context.Context, reference, gatewayTransactionID string) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $3, gateway_transaction_id = $2, updated_at = NOW()
		WHERE reference = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		reference,
		gatewayTransactionID,
		models.TransactionStatusInitialized,
		models.TransactionStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark transaction %s initialized: %w", reference, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for %s: %w", reference, err)
	}
	return rows == 1, nil
}

// CompleteTransaction moves initialized -> success. The paid_at timestamp,
// the raw verification payload, the one-time notification flag and the
// booking confirmation are all written atomically; the caller that observes
// true is the single transition winner and owns enqueueing the notification.
func (r *PaymentRepo) CompleteTransaction(ctx context.Context, reference string, raw json.RawMessage, paidAt time.Time) (bool, error) {
	return r.transition(ctx, reference,
		[]models.TransactionStatus{models.TransactionStatusInitialized},
		models.TransactionStatusSuccess,
		models.BookingStatusConfirmed,
		raw, &paidAt)
}

// FailTransaction moves pending/initialized -> failed and marks the booking
// payment_failed
func (r *PaymentRepo) FailTransaction(ctx context.Context, reference string, raw json.RawMessage) (bool, error) {
	return r.transition(ctx, reference,
		[]models.TransactionStatus{models.TransactionStatusPending, models.TransactionStatusInitialized},
		models.TransactionStatusFailed,
		models.BookingStatusPaymentFailed,
		raw, nil)
}

// CancelTransaction moves initialized -> cancelled and cancels the booking
func (r *PaymentRepo) CancelTransaction(ctx context.Context, reference string) (bool, error) {
	return r.transition(ctx, reference,
		[]models.TransactionStatus{models.TransactionStatusInitialized},
		models.TransactionStatusCancelled,
		models.BookingStatusCancelled,
		nil, nil)
}

func (r *PaymentRepo) transition(
	ctx context.Context,
	reference string,
	from []models.TransactionStatus,
	to models.TransactionStatus,
	bookingStatus models.BookingStatus,
	raw json.RawMessage,
	paidAt *time.Time,
) (bool, error) {
	fromStrs := make([]string, len(from))
	for i, s := range from {
		fromStrs[i] = string(s)
	}

	var rawArg interface{}
	if raw != nil {
		rawArg = []byte(raw)
	}

	query, args, err := sqlx.In(`
		UPDATE transactions
		SET status = ?,
			raw_verification_payload = COALESCE(?, raw_verification_payload),
			paid_at = COALESCE(?, paid_at),
			notification_enqueued = TRUE,
			updated_at = NOW()
		WHERE reference = ? AND status IN (?)`,
		string(to), rawArg, paidAt, reference, fromStrs)
	if err != nil {
		return false, fmt.Errorf("failed to build transition query for %s: %w", reference, err)
	}
	query = r.db.Rebind(query)

	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transition for %s: %w", reference, err)
	}
	defer dbTx.Rollback()

	result, err := dbTx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition %s to %s: %w", reference, to, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for %s: %w", reference, err)
	}
	if rows == 0 {
		// Another caller already moved the transaction; not an error.
		return false, nil
	}

	bookingQuery := `
		UPDATE bookings
		SET confirmation_status = $2, updated_at = NOW()
		WHERE id = (SELECT booking_id FROM transactions WHERE reference = $1)
	`
	if _, err := dbTx.ExecContext(ctx, bookingQuery, reference, bookingStatus); err != nil {
		return false, fmt.Errorf("failed to update booking status for %s: %w", reference, err)
	}

	if err := dbTx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transition for %s: %w", reference, err)
	}

	return true, nil
}

func (r *PaymentRepo) scanTransaction(row *sql.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var raw []byte
	var paidAt sql.NullTime

	err := row.Scan(
		&tx.Reference,
		&tx.BookingID,
		&tx.GatewayTransactionID,
		&tx.Amount,
		&tx.Currency,
		&tx.Method,
		&tx.Status,
		&raw,
		&paidAt,
		&tx.NotificationEnqueued,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if raw != nil {
		tx.RawVerificationPayload = json.RawMessage(raw)
	}
	if paidAt.Valid {
		tx.PaidAt = &paidAt.Time
	}

	return tx, nil
}
