package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
)

type BookingRepository interface {
	LoadAll() ([]entities.Booking, error)
	SaveAll(bookings []entities.Booking) error
}

// fileBookingRepository keeps the whole collection in a single JSON file.
// Every operation re-reads or rewrites the entire file; there is no locking
// and no atomic rename, so concurrent writers race and the last write wins.
type fileBookingRepository struct {
	dir  string
	path string
}

func NewFileBookingRepository(dataDir, dataFile string) BookingRepository {
	return &fileBookingRepository{
		dir:  dataDir,
		path: filepath.Join(dataDir, dataFile),
	}
}

// ensureInitialized creates the data directory and seeds an empty collection
// on first use. There is no separate startup hook guaranteed to run first,
// so it is called before every read and write.
func (r *fileBookingRepository) ensureInitialized() error {
	if err := os.MkdirAll(r.dir, os.ModePerm); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		if err := os.WriteFile(r.path, []byte("[]"), 0644); err != nil {
			return fmt.Errorf("seed bookings file: %w", err)
		}
	}
	return nil
}

func (r *fileBookingRepository) LoadAll() ([]entities.Booking, error) {
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	file, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read bookings file: %w", err)
	}
	var bookings []entities.Booking
	if err := json.Unmarshal(file, &bookings); err != nil {
		return nil, fmt.Errorf("parse bookings file: %w", err)
	}
	return bookings, nil
}

func (r *fileBookingRepository) SaveAll(bookings []entities.Booking) error {
	if err := r.ensureInitialized(); err != nil {
		return err
	}
	if bookings == nil {
		bookings = []entities.Booking{}
	}
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}
