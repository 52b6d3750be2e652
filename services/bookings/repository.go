package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// BookingRepo defines the booking persistence operations. The confirmation
// status column is written only by the payment ledger's transition
// statements; this repository never updates it.
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
