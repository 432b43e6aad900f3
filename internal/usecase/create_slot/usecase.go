package create_slot

import (
	"context"
	"fmt"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
)

// UseCase use case создания слота (только для staff/admin)
type UseCase struct {
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает слот после проверки пересечений с существующими слотами
// на ту же дату. Проверка и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных создания не породили пересекающиеся слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: date=%s, start=%s, end=%s, createdBy=%d",
		req.Date, req.StartTime, req.EndTime, req.CreatedBy)

	v, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Slot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Полуоткрытые интервалы: [09:00,10:00) и [10:00,11:00) не пересекаются
		overlaps, err := uc.slotRepo.HasOverlapping(txCtx, v.date, v.startTime, v.endTime)
		if err != nil {
			uc.logger.Error("CreateSlot: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateSlot: interval [%s, %s) overlaps an existing slot on %s",
				v.startTime, v.endTime, req.Date)
			return ErrSlotOverlap
		}

		slot := &domain.Slot{
			Date:         v.date,
			StartTime:    v.startTime,
			EndTime:      v.endTime,
			MaxBookings:  v.maxBookings,
			ServiceTypes: v.serviceTypes,
			IsAvailable:  true,
			CreatedBy:    req.CreatedBy,
			Notes:        req.Notes,
		}

		created, err := uc.slotRepo.Create(txCtx, slot)
		if err != nil {
			uc.logger.Error("CreateSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSlot: successfully created slot id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		MaxBookings:  result.MaxBookings,
		BookedCount:  result.BookedCount,
		ServiceTypes: result.ServiceTypes,
		IsAvailable:  result.IsAvailable,
		CreatedBy:    result.CreatedBy,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
