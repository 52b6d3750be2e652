package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/bookings"
)

const defaultCurrency = "NGN"

// BookingUC implements the bookings.BookingUC interface
type BookingUC struct {
	cfg  *models.Config
	repo bookings.BookingRepo
}

// NewBookingUC creates a new booking use case
func NewBookingUC(cfg *models.Config, repo bookings.BookingRepo) bookings.BookingUC {
	return &BookingUC{
		cfg:  cfg,
		repo: repo,
	}
}

// CreateBooking creates a new booking in the awaiting_payment state
func (uc *BookingUC) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, bookings.ErrInvalidStayDates
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	booking := &models.Booking{
		ID:                 uuid.New(),
		Destination:        req.Destination,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		Guests:             req.Guests,
		TotalAmount:        req.TotalAmount,
		Currency:           currency,
		ConfirmationStatus: models.BookingStatusAwaitingPayment,
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBooking fetches a booking by id
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", id, err)
	}
	if booking == nil {
		return nil, bookings.ErrBookingNotFound
	}
	return booking, nil
}
