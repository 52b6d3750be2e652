package handler

import (
	"github.com/labstack/echo/v4"

	httpHandler "github.com/wayfare-app/wayfare/services/bookings/handler/http"
)

// Handler aggregates the booking service handlers
type Handler struct {
	bookingHandler *httpHandler.BookingHandler
}

// NewHandler creates a new bookings handler aggregate
func NewHandler(bookingHandler *httpHandler.BookingHandler) *Handler {
	return &Handler{bookingHandler: bookingHandler}
}

// RegisterRoutes registers the booking routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings")

	g.POST("", h.bookingHandler.CreateBooking)
	g.GET("/:id", h.bookingHandler.GetBooking)
}
