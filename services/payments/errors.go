package payments

import "errors"

var (
	// ErrGatewayUnavailable means the gateway could not be reached or
	// answered with a server error. Transient; the caller may retry with
	// the same reference.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected means the gateway definitively refused the
	// request. Terminal; not retryable.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrUnknownReference means no transaction exists for the reference
	ErrUnknownReference = errors.New("unknown payment reference")

	// ErrVerificationPending means the transaction outcome could not be
	// authoritatively checked right now. Not a failure; try again later.
	ErrVerificationPending = errors.New("verification pending")

	// ErrBookingNotFound means the booking to pay for does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentInProgress means an initialized transaction already exists
	// for the booking and a redirect has been issued
	ErrPaymentInProgress = errors.New("payment already in progress for booking")

	// ErrPaymentFinalized means the booking's transaction already reached a
	// terminal state; a retried payment needs a new booking
	ErrPaymentFinalized = errors.New("payment already finalized for booking")
)
