package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// BookingUC defines the interface for booking use cases
type BookingUC interface {
	// CreateBooking creates a new booking awaiting payment
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)

	// GetBooking fetches a booking by id
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
