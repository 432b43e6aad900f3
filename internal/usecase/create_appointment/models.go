package create_appointment

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// Дата и время передаются строками и валидируются внутри usecase в строгом
// порядке: обязательные поля, тип услуги, дата, время
type Request struct {
	UserID      *int64  // ID пользователя, nil для гостевого бронирования
	ServiceType string  // Тип услуги (нормализуется)
	Date        string  // Дата бронирования, YYYY-MM-DD
	TimeSlot    string  // Время внутри слота, HH:MM
	FirstName   string  // Имя
	LastName    string  // Фамилия
	Email       string  // Email для подтверждения
	Phone       string  // Телефон
	Address     string  // Адрес выезда
	Notes       *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      *int64
	ServiceType string
	Date        time.Time
	TimeSlot    types.TimeString
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	Notes       *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
