package delete_slot

import (
	"context"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)

	// DeleteIfEmpty удаляет слот условным оператором
	// "DELETE ... WHERE id = $1 AND booked_count = 0"
	DeleteIfEmpty(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
