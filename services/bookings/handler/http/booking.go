package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/internal/utils"
	"github.com/wayfare-app/wayfare/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateBooking handles booking creation requests
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStayDates) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking fetches a booking by id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}
