package usecases

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
	"github.com/kevanghobadi/windsurf-hotel/app/repositories"
	"github.com/kevanghobadi/windsurf-hotel/app/utils"
)

type BookingUsecase interface {
	Create(req entities.BookingRequest) (entities.Booking, error)
	GetAll() ([]entities.Booking, error)
	GetByID(id string) (entities.Booking, error)
	UpdateStatus(id string, status string) (entities.Booking, error)
}

type bookingUsecase struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingUsecase(bookingRepo repositories.BookingRepository) BookingUsecase {
	return &bookingUsecase{bookingRepo: bookingRepo}
}

// 1. Create
func (u *bookingUsecase) Create(req entities.BookingRequest) (entities.Booking, error) {
	var booking entities.Booking

	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.CheckIn == "" || req.CheckOut == "" {
		return booking, &UseCaseError{Code: http.StatusBadRequest, Message: "fullName, email, phone, checkIn and checkOut are required"}
	}

	bookings, err := u.bookingRepo.LoadAll()
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/create"}).Error(err)
		return booking, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}

	now := time.Now()
	booking = entities.Booking{
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Message:    req.Message,
		TotalPrice: req.TotalPrice,
		Status:     entities.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	bookings = append(bookings, booking)
	if err := u.bookingRepo.SaveAll(bookings); err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/create"}).Error(err)
		return entities.Booking{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}

	// Best effort: the guest already has their booking, a lost email only
	// delays the front desk.
	if err := utils.SendBookingNotification(booking); err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/create"}).Warn("notification email failed: ", err)
	}

	return booking, nil
}

// 2. Get All
func (u *bookingUsecase) GetAll() ([]entities.Booking, error) {
	bookings, err := u.bookingRepo.LoadAll()
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/list"}).Error(err)
		return nil, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
	return bookings, nil
}

// 3. Get By ID
func (u *bookingUsecase) GetByID(id string) (entities.Booking, error) {
	bookings, err := u.bookingRepo.LoadAll()
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/detail"}).Error(err)
		return entities.Booking{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}

	for _, booking := range bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return entities.Booking{}, &UseCaseError{Code: http.StatusNotFound, Message: "booking not found"}
}

// 4. Update Status
// The incoming status is stored as given. The admin dashboard only ever sends
// the four known values, and transitions are unrestricted.
func (u *bookingUsecase) UpdateStatus(id string, status string) (entities.Booking, error) {
	bookings, err := u.bookingRepo.LoadAll()
	if err != nil {
		logrus.WithFields(logrus.Fields{"path": "bookings/status"}).Error(err)
		return entities.Booking{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
	}

	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		bookings[i].Status = status
		bookings[i].UpdatedAt = time.Now()
		if err := u.bookingRepo.SaveAll(bookings); err != nil {
			logrus.WithFields(logrus.Fields{"path": "bookings/status"}).Error(err)
			return entities.Booking{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
		}
		return bookings[i], nil
	}
	return entities.Booking{}, &UseCaseError{Code: http.StatusNotFound, Message: "booking not found"}
}
