package create_appointment

import (
	"context"
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/internal/integrations/notifyservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListByDate получает доступные слоты на дату, отсортированные по времени начала
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Slot, error)

	// ReserveCapacity атомарно занимает одно место условным обновлением
	ReserveCapacity(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	SendAppointmentConfirmationWithGracefulDegradation(ctx context.Context, confirmation *notifyservice.AppointmentConfirmation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
