package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the confirmation state of a booking. It is derived from
// the booking's transaction status and is only ever written together with a
// transaction status transition.
type BookingStatus string

const (
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusPaymentFailed   BookingStatus = "payment_failed"
	BookingStatusCancelled       BookingStatus = "cancelled"
)

// Booking represents a travel booking awaiting payment
type Booking struct {
	ID                 uuid.UUID     `json:"id" db:"id"`
	Destination        string        `json:"destination" db:"destination"`
	CustomerName       string        `json:"customer_name" db:"customer_name"`
	CustomerEmail      string        `json:"customer_email" db:"customer_email"`
	CheckInDate        time.Time     `json:"check_in_date" db:"check_in_date"`
	CheckOutDate       time.Time     `json:"check_out_date" db:"check_out_date"`
	Guests             int           `json:"guests" db:"guests"`
	TotalAmount        float64       `json:"total_amount" db:"total_amount"`
	Currency           string        `json:"currency" db:"currency"`
	ConfirmationStatus BookingStatus `json:"confirmation_status" db:"confirmation_status"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the payload for creating a booking
type CreateBookingRequest struct {
	Destination   string    `json:"destination" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CheckInDate   time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time `json:"check_out_date" validate:"required"`
	Guests        int       `json:"guests" validate:"required,min=1"`
	TotalAmount   float64   `json:"total_amount" validate:"required,gt=0"`
	Currency      string    `json:"currency" validate:"omitempty,len=3"`
}
