package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
)

type fakeSlotStore struct {
	lastFilter domain.SlotFilter
	result     []*domain.Slot
}

func (f *fakeSlotStore) List(_ context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	f.lastFilter = filter
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_EmptyRequestListsAllAvailable(t *testing.T) {
	store := &fakeSlotStore{}
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Nil(t, store.lastFilter.StartDate)
	assert.Nil(t, store.lastFilter.EndDate)
	assert.Nil(t, store.lastFilter.ServiceType)
	assert.True(t, store.lastFilter.OnlyAvailable)

	// Пустой результат - не ошибка
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceTypeAllMeansNoFilter(t *testing.T) {
	store := &fakeSlotStore{}
	uc := NewUseCase(store, nopLogger{})

	for _, v := range []string{"all", "All", "ALL", ""} {
		_, err := uc.Execute(context.Background(), &Request{ServiceType: v})
		require.NoError(t, err)
		assert.Nil(t, store.lastFilter.ServiceType, "serviceType=%q", v)
	}
}

func TestExecute_ServiceTypeNormalized(t *testing.T) {
	store := &fakeSlotStore{}
	uc := NewUseCase(store, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceType: "Water-Testing"})
	require.NoError(t, err)
	require.NotNil(t, store.lastFilter.ServiceType)
	assert.Equal(t, domain.ServiceWaterTesting, *store.lastFilter.ServiceType)
}

func TestExecute_UnknownServiceType(t *testing.T) {
	uc := NewUseCase(&fakeSlotStore{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceType: "grooming"})
	assert.ErrorIs(t, err, ErrUnknownServiceType)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeSlotStore{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartDate: "2026-13-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{EndDate: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateRangePassedToFilter(t *testing.T) {
	store := &fakeSlotStore{}
	uc := NewUseCase(store, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-30",
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastFilter.StartDate)
	require.NotNil(t, store.lastFilter.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), *store.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local), *store.lastFilter.EndDate)
}

func TestExecute_ComputesAvailableSpots(t *testing.T) {
	store := &fakeSlotStore{result: []*domain.Slot{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", MaxBookings: 5, BookedCount: 2},
	}}
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 3, resp.Slots[0].AvailableSpots)
}
