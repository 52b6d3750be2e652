package bookings

import "errors"

var (
	// ErrBookingNotFound indicates the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStayDates indicates check-out is not after check-in
	ErrInvalidStayDates = errors.New("check-out date must be after check-in date")
)
