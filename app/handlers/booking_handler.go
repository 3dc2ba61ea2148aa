package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
	"github.com/kevanghobadi/windsurf-hotel/app/usecases"
)

type BookingHandler struct {
	bookingUsecase usecases.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// CreateBooking godoc
// @Summary Create a booking request
// @Description Submit a new booking request from the public booking form
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body entities.BookingRequest true "Booking request body"
// @Success 201 {object} entities.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req entities.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "fullName, email, phone, checkIn and checkOut are required"})
	}

	booking, err := h.bookingUsecase.Create(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusCreated, entities.CreateBookingResponse{
		Message: "booking request received",
		Booking: booking,
	})
}

// GetBookings godoc
// @Summary List all bookings
// @Description List every booking request in creation order
// @Tags Bookings
// @Produce json
// @Success 200 {array} entities.Booking
// @Failure 500 {object} map[string]string
// @Router /api/bookings [get]
func (h *BookingHandler) GetBookings(c echo.Context) error {
	bookings, err := h.bookingUsecase.GetAll()
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// GetBookingByID godoc
// @Summary Get a booking
// @Description Fetch a single booking request by id
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} entities.Booking
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBookingByID(c echo.Context) error {
	booking, err := h.bookingUsecase.GetByID(c.Param("id"))
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus godoc
// @Summary Update a booking status
// @Description Set the status of a booking from the admin dashboard
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body entities.UpdateStatusRequest true "New status"
// @Success 200 {object} entities.UpdateStatusResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/admin/bookings/{id} [put]
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req entities.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	booking, err := h.bookingUsecase.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"message": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, entities.UpdateStatusResponse{
		Success: true,
		Booking: booking,
		Message: "booking status updated",
	})
}
