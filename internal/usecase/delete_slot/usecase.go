package delete_slot

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/slot"
)

// UseCase use case удаления слота (только для staff/admin)
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute удаляет слот, если на него нет бронирований
//
// Удаление условное: предикат booked_count = 0 входит в сам DELETE, поэтому
// конкурентное бронирование не может проскочить между проверкой и удалением.
// Предварительный GetByID нужен только чтобы отличить 404 от конфликта
func (uc *UseCase) Execute(ctx context.Context, id int64) error {
	uc.logger.Info("DeleteSlot: id=%d", id)

	if _, err := uc.slotRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("DeleteSlot: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		uc.logger.Error("DeleteSlot: failed to get slot id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if err := uc.slotRepo.DeleteIfEmpty(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotHasBookings) {
			uc.logger.Warn("DeleteSlot: slot id=%d has bookings, not deleted", id)
			return ErrSlotHasBookings
		}
		uc.logger.Error("DeleteSlot: failed to delete slot id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteSlot: successfully deleted slot id=%d", id)
	return nil
}
