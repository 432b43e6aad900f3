package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	slotRepo "github.com/dsmirn0v/AQS-BookingService/internal/infra/storage/slot"
	"github.com/dsmirn0v/AQS-BookingService/internal/integrations/notifyservice"
)

// UseCase use case создания бронирования
//
// Единственная операция сервиса с настоящей гонкой: много конкурентных
// запросов могут претендовать на один слот, и booked_count никогда не должен
// превысить max_bookings. Корректность обеспечивает условное обновление
// "UPDATE ... WHERE booked_count < max_bookings" с проверкой затронутых строк,
// а не уровень изоляции: Read Committed достаточно
type UseCase struct {
	slotRepo     SlotRepository
	apptRepo     AppointmentRepository
	notifyClient NotifyServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	apptRepo AppointmentRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		apptRepo:     apptRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет попытку бронирования:
// валидация -> поиск слота -> условный инкремент -> вставка бронирования.
// Инкремент и вставка выполняются в одной транзакции: либо существуют оба,
// либо ни одного. Ноль затронутых строк у инкремента - терминальный
// ErrSlotFull для этого запроса, без повторных попыток
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s",
		req.ServiceType, req.Date, req.TimeSlot)

	// 1. Валидация до любых обращений к хранилищу
	v, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Поиск слота, резервирование места и вставка - в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Все доступные слоты на дату, по возрастанию времени начала
		slots, err := uc.slotRepo.ListByDate(txCtx, v.date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list slots: %v", err)
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		// 2.2. Самый ранний слот, содержащий время и принимающий тип услуги
		matched := matchSlot(slots, v.timeSlot, v.serviceType, v.rawService)
		if matched == nil {
			uc.logger.Warn("CreateAppointment: no matching slot for date=%s time=%s service=%s",
				req.Date, req.TimeSlot, v.serviceType)
			return ErrSlotFull
		}

		// 2.3. Условный инкремент ёмкости; ноль строк = слот заполнился
		// между чтением и записью
		if err := uc.slotRepo.ReserveCapacity(txCtx, matched.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotFull) {
				uc.logger.Warn("CreateAppointment: slot id=%d filled up concurrently", matched.ID)
				return ErrSlotFull
			}
			uc.logger.Error("CreateAppointment: failed to reserve capacity for slot id=%d: %v", matched.ID, err)
			return fmt.Errorf("%w: failed to reserve capacity: %v", ErrInternal, err)
		}

		// 2.4. Вставка бронирования после подтверждённого инкремента;
		// ошибка вставки откатит и инкремент
		appt := &domain.Appointment{
			UserID:      req.UserID,
			ServiceType: v.serviceType,
			Date:        v.date,
			TimeSlot:    v.timeSlot,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Phone:       req.Phone,
			Address:     req.Address,
			Notes:       req.Notes,
			Status:      domain.StatusPending,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 3. Подтверждение по почте - best effort, после коммита
	// Недоступность сервиса уведомлений не отменяет бронирование
	confirmation := &notifyservice.AppointmentConfirmation{
		AppointmentID: result.ID,
		Email:         result.Email,
		FirstName:     result.FirstName,
		LastName:      result.LastName,
		ServiceType:   string(result.ServiceType),
		Date:          result.Date.Format(domain.DateFormat),
		TimeSlot:      result.TimeSlot.String(),
	}
	_ = uc.notifyClient.SendAppointmentConfirmationWithGracefulDegradation(ctx, confirmation)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		ServiceType: string(result.ServiceType),
		Date:        result.Date,
		TimeSlot:    result.TimeSlot,
		FirstName:   result.FirstName,
		LastName:    result.LastName,
		Email:       result.Email,
		Phone:       result.Phone,
		Address:     result.Address,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
