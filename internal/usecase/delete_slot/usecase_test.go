package delete_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	slotRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/slot"
)

// fakeSlotStore in-memory хранилище с семантикой условного удаления
type fakeSlotStore struct {
	slots map[int64]*domain.Slot
}

func (f *fakeSlotStore) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotStore) DeleteIfEmpty(_ context.Context, id int64) error {
	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.BookedCount > 0 {
		return slotRepo.ErrSlotHasBookings
	}
	delete(f.slots, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_DeletesEmptySlot(t *testing.T) {
	store := &fakeSlotStore{slots: map[int64]*domain.Slot{
		1: {ID: 1, BookedCount: 0},
	}}
	uc := NewUseCase(store, nopLogger{})

	require.NoError(t, uc.Execute(context.Background(), 1))
	assert.NotContains(t, store.slots, int64(1))
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(&fakeSlotStore{slots: map[int64]*domain.Slot{}}, nopLogger{})

	err := uc.Execute(context.Background(), 77)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotWithBookingsNotDeleted(t *testing.T) {
	store := &fakeSlotStore{slots: map[int64]*domain.Slot{
		1: {ID: 1, BookedCount: 2},
	}}
	uc := NewUseCase(store, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSlotHasBookings)
	assert.Contains(t, store.slots, int64(1))
}
