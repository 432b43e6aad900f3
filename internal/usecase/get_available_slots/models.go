package get_available_slots

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
// Все параметры опциональны: пустая строка = без фильтра
type Request struct {
	StartDate   string // Начало периода включительно, YYYY-MM-DD
	EndDate     string // Конец периода включительно, YYYY-MM-DD
	ServiceType string // Тип услуги или "all"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []Slot
}

// Slot модель слота с остатком ёмкости
type Slot struct {
	ID             int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	MaxBookings    int
	BookedCount    int
	AvailableSpots int
	ServiceTypes   []string
	Notes          *string
}
