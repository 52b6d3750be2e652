package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// BookingRepo is the sqlx-backed booking store
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, destination, customer_name, customer_email, check_in_date,
			check_out_date, guests, total_amount, currency,
			confirmation_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.Destination,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Guests,
		booking.TotalAmount,
		booking.Currency,
		booking.ConfirmationStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking %s: %w", booking.ID, err)
	}

	return nil
}

// GetBookingByID retrieves a booking. Returns nil when no booking exists.
func (r *BookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, destination, customer_name, customer_email, check_in_date,
			check_out_date, guests, total_amount, currency,
			confirmation_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	err := r.db.GetContext(ctx, booking, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking %s: %w", id, err)
	}

	return booking, nil
}
