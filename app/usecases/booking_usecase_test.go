package usecases

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
	"github.com/kevanghobadi/windsurf-hotel/app/repositories"
)

func validRequest() entities.BookingRequest {
	return entities.BookingRequest{
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Phone:      "5551234567",
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
		TotalPrice: 240,
	}
}

func TestCreateSetsDefaults(t *testing.T) {
	repo := repositories.NewMemoryBookingRepository()
	u := NewBookingUsecase(repo)

	booking, err := u.Create(validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, entities.StatusPending, booking.Status)
	assert.Equal(t, "", booking.Message)
	assert.False(t, booking.CreatedAt.IsZero())
	require.Len(t, repo.Bookings, 1)
	assert.Equal(t, booking, repo.Bookings[0])
}

func TestCreateRequiresAllFields(t *testing.T) {
	mutations := map[string]func(*entities.BookingRequest){
		"fullName": func(r *entities.BookingRequest) { r.FullName = "" },
		"email":    func(r *entities.BookingRequest) { r.Email = "" },
		"phone":    func(r *entities.BookingRequest) { r.Phone = "" },
		"checkIn":  func(r *entities.BookingRequest) { r.CheckIn = "" },
		"checkOut": func(r *entities.BookingRequest) { r.CheckOut = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			repo := repositories.NewMemoryBookingRepository()
			u := NewBookingUsecase(repo)

			req := validRequest()
			mutate(&req)
			_, err := u.Create(req)

			var ucErr *UseCaseError
			require.ErrorAs(t, err, &ucErr)
			assert.Equal(t, http.StatusBadRequest, ucErr.Code)
			assert.Empty(t, repo.Bookings, "nothing may be persisted on a validation failure")
		})
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	repo := repositories.NewMemoryBookingRepository()
	u := NewBookingUsecase(repo)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		booking, err := u.Create(validRequest())
		require.NoError(t, err)
		assert.False(t, seen[booking.ID], "duplicate id %s", booking.ID)
		seen[booking.ID] = true
	}
	assert.Len(t, repo.Bookings, 10)
}

func TestGetByIDAfterCreate(t *testing.T) {
	u := NewBookingUsecase(repositories.NewMemoryBookingRepository())

	created, err := u.Create(validRequest())
	require.NoError(t, err)

	found, err := u.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestGetByIDUnknown(t *testing.T) {
	u := NewBookingUsecase(repositories.NewMemoryBookingRepository())

	_, err := u.GetByID("does-not-exist")
	var ucErr *UseCaseError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusNotFound, ucErr.Code)
}

func TestGetAllPreservesCreationOrder(t *testing.T) {
	u := NewBookingUsecase(repositories.NewMemoryBookingRepository())

	var ids []string
	for i := 0; i < 5; i++ {
		booking, err := u.Create(validRequest())
		require.NoError(t, err)
		ids = append(ids, booking.ID)
	}

	bookings, err := u.GetAll()
	require.NoError(t, err)
	require.Len(t, bookings, 5)
	for i, booking := range bookings {
		assert.Equal(t, ids[i], booking.ID)
	}
}

func TestUpdateStatusUnknownIDLeavesStoreUntouched(t *testing.T) {
	repo := repositories.NewMemoryBookingRepository()
	u := NewBookingUsecase(repo)

	created, err := u.Create(validRequest())
	require.NoError(t, err)

	_, err = u.UpdateStatus("does-not-exist", entities.StatusConfirmed)
	var ucErr *UseCaseError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusNotFound, ucErr.Code)

	require.Len(t, repo.Bookings, 1)
	assert.Equal(t, created, repo.Bookings[0])
}

func TestUpdateStatusChangesOnlyStatusAndUpdatedAt(t *testing.T) {
	repo := repositories.NewMemoryBookingRepository()
	u := NewBookingUsecase(repo)

	created, err := u.Create(validRequest())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated, err := u.UpdateStatus(created.ID, entities.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusConfirmed, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// everything except status and updatedAt stays as created
	updated.Status = created.Status
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated)
}

func TestUpdateStatusAcceptsAnyValue(t *testing.T) {
	u := NewBookingUsecase(repositories.NewMemoryBookingRepository())

	created, err := u.Create(validRequest())
	require.NoError(t, err)

	updated, err := u.UpdateStatus(created.ID, "whatever-the-dashboard-sends")
	require.NoError(t, err)
	assert.Equal(t, "whatever-the-dashboard-sends", updated.Status)
}

func TestStorageFailuresSurfaceAsInternalErrors(t *testing.T) {
	repo := repositories.NewMemoryBookingRepository()
	repo.FailLoad = true
	u := NewBookingUsecase(repo)

	var ucErr *UseCaseError

	_, err := u.GetAll()
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusInternalServerError, ucErr.Code)

	_, err = u.Create(validRequest())
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusInternalServerError, ucErr.Code)

	repo.FailLoad = false
	repo.FailSave = true
	_, err = u.Create(validRequest())
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusInternalServerError, ucErr.Code)
	assert.Equal(t, "internal server error", ucErr.Message)
}
