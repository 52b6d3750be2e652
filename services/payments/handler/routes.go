package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/wayfare-app/wayfare/services/payments/handler/http"
)

// Handler aggregates the payment service handlers
type Handler struct {
	paymentHandler *httpHandler.PaymentHandler
}

// NewHandler creates a new payments handler aggregate
func NewHandler(paymentHandler *httpHandler.PaymentHandler) *Handler {
	return &Handler{paymentHandler: paymentHandler}
}

// RegisterRoutes registers the payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/payments")

	g.POST("/initiate", h.paymentHandler.InitiatePayment)
	g.POST("/verify", h.paymentHandler.VerifyPayment)
	g.POST("/cancel", h.paymentHandler.CancelPayment)
	g.GET("/:reference/status", h.paymentHandler.GetPaymentStatus)
	g.POST("/webhook", h.paymentHandler.HandleWebhook)
}
