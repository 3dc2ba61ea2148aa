package repositories

import (
	"errors"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
)

// MemoryBookingRepository is an in-memory stand-in for the file-backed
// repository, used by tests and local experiments.
type MemoryBookingRepository struct {
	Bookings []entities.Booking

	// FailLoad / FailSave force storage errors for failure-path tests.
	FailLoad bool
	FailSave bool
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{Bookings: []entities.Booking{}}
}

func (r *MemoryBookingRepository) LoadAll() ([]entities.Booking, error) {
	if r.FailLoad {
		return nil, errors.New("load failure")
	}
	out := make([]entities.Booking, len(r.Bookings))
	copy(out, r.Bookings)
	return out, nil
}

func (r *MemoryBookingRepository) SaveAll(bookings []entities.Booking) error {
	if r.FailSave {
		return errors.New("save failure")
	}
	r.Bookings = make([]entities.Booking, len(bookings))
	copy(r.Bookings, bookings)
	return nil
}
