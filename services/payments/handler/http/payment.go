package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/internal/utils"
	"github.com/wayfare-app/wayfare/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
	gw        payments.PaymentGW
	events    payments.PaymentEvents
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC, gw payments.PaymentGW, events payments.PaymentEvents) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		gw:        gw,
		events:    events,
	}
}

// InitiatePayment handles payment initiation requests
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	resp, err := h.paymentUC.Initiate(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, payments.ErrPaymentInProgress), errors.Is(err, payments.ErrPaymentFinalized):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, payments.ErrGatewayUnavailable):
			return utils.BadGatewayResponse(c, "Payment gateway unavailable, please retry")
		case errors.Is(err, payments.ErrGatewayRejected):
			return utils.BadRequestResponse(c, "Payment gateway rejected the request")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to initiate payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment initiated successfully", resp)
}

// VerifyPayment handles client-initiated payment verification
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.paymentUC.Reconcile(c.Request().Context(), req.Reference, models.SourceClientVerify)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownReference) {
			return utils.NotFoundResponse(c, "Unknown payment reference")
		}
		return utils.InternalServerErrorResponse(c, "Failed to verify payment")
	}

	message := "Payment verified"
	if !result.Settled {
		message = "Verification pending, try again later"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// CancelPayment cancels a payment before an outcome is known
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	var req models.CancelPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.paymentUC.Cancel(c.Request().Context(), req.Reference)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownReference) {
			return utils.NotFoundResponse(c, "Unknown payment reference")
		}
		return utils.InternalServerErrorResponse(c, "Failed to cancel payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment cancellation processed", result)
}

// GetPaymentStatus returns the read-only projection of a transaction
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	reference := c.Param("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "Reference is required")
	}

	resp, err := h.paymentUC.GetStatus(c.Request().Context(), reference)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownReference) {
			return utils.NotFoundResponse(c, "Unknown payment reference")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", resp)
}
