package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevanghobadi/windsurf-hotel/app/handlers"
)

func RegisterRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	adminAuth echo.MiddlewareFunc,
) {
	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hotel booking API is running")
	})

	// Public booking routes.
	// GET /api/bookings is intentionally left open so the demo frontend can
	// render without logging in; a real deployment should remove it and use
	// the admin listing instead.
	api := e.Group("/api")
	api.POST("/bookings", bookingHandler.CreateBooking)
	api.GET("/bookings", bookingHandler.GetBookings)
	api.GET("/bookings/:id", bookingHandler.GetBookingByID)

	// Admin routes
	api.POST("/admin/login", authHandler.AdminLogin)

	adminGroup := api.Group("/admin")
	adminGroup.Use(adminAuth)
	adminGroup.GET("/bookings", bookingHandler.GetBookings)
	adminGroup.PUT("/bookings/:id", bookingHandler.UpdateBookingStatus)
}
