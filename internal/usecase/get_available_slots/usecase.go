package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case получения доступных слотов для бронирования
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

// Execute возвращает доступные незаполненные слоты по фильтру,
// отсортированные по дате и времени начала по возрастанию
// Пустой результат - не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: startDate=%q, endDate=%q, serviceType=%q",
		req.StartDate, req.EndDate, req.ServiceType)

	filter, err := buildFilter(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	slots, err := uc.slotRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:             s.ID,
			Date:           s.Date,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			MaxBookings:    s.MaxBookings,
			BookedCount:    s.BookedCount,
			AvailableSpots: s.MaxBookings - s.BookedCount,
			ServiceTypes:   s.ServiceTypes,
			Notes:          s.Notes,
		}
	}

	uc.logger.Info("GetAvailableSlots: found %d slots", len(result))
	return &Response{Slots: result}, nil
}
