package entities

import (
	"time"
)

// Booking statuses used by the admin dashboard. UpdateStatus stores whatever
// string it is given; these constants are not enforced as a gate.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ==========================================
// 1. DOMAIN MODEL
// ==========================================

type Booking struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CheckIn    string    `json:"checkIn"`  // YYYY-MM-DD
	CheckOut   string    `json:"checkOut"` // YYYY-MM-DD
	Message    string    `json:"message"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ==========================================
// 2. REQUEST MODELS
// ==========================================

type BookingRequest struct {
	FullName   string  `json:"fullName" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Phone      string  `json:"phone" validate:"required"`
	CheckIn    string  `json:"checkIn" validate:"required"`
	CheckOut   string  `json:"checkOut" validate:"required"`
	Message    string  `json:"message"`
	TotalPrice float64 `json:"totalPrice"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// ==========================================
// 3. RESPONSE MODELS
// ==========================================

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type CreateBookingResponse struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

type UpdateStatusResponse struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
	Message string  `json:"message"`
}
