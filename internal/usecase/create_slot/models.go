package create_slot

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// Request модель запроса на создание слота
type Request struct {
	Date         string   // Дата слота, YYYY-MM-DD
	StartTime    string   // Время начала, HH:MM
	EndTime      string   // Время окончания, HH:MM
	MaxBookings  *int     // Ёмкость слота, nil = значение по умолчанию
	ServiceTypes []string // Типы услуг; пустой список = все типы
	Notes        *string  // Заметки (опционально)
	CreatedBy    int64    // ID сотрудника, создающего слот
}

// Response модель ответа с созданным слотом
type Response struct {
	ID           int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	MaxBookings  int
	BookedCount  int
	ServiceTypes []string
	IsAvailable  bool
	CreatedBy    int64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
