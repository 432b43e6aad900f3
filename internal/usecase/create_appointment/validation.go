package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// validated результат успешной валидации запроса
type validated struct {
	serviceType domain.ServiceType
	rawService  string
	date        time.Time
	timeSlot    types.TimeString
}

// validateRequest валидирует запрос в строгом порядке, падая на первой ошибке:
// 1) обязательные поля, 2) тип услуги, 3) дата, 4) формат времени
func validateRequest(req *Request, now time.Time) (*validated, error) {
	// 1. Обязательные поля
	required := []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"serviceType", req.ServiceType},
		{"date", req.Date},
		{"timeSlot", req.TimeSlot},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingFields, f.name)
		}
	}

	// 2. Тип услуги из фиксированного перечня, с нормализацией регистра
	serviceType, ok := domain.NormalizeServiceType(req.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
	}

	// 3. Дата: синтаксис и не в прошлом (с точностью до календарного дня)
	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}
	if isDateInPast(date, now) {
		return nil, ErrDateInPast
	}

	// 4. Формат времени HH:MM
	timeSlot, err := types.NewTimeStringFromString(req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	return &validated{
		serviceType: serviceType,
		rawService:  strings.TrimSpace(req.ServiceType),
		date:        date,
		timeSlot:    timeSlot,
	}, nil
}

// parseCalendarDate парсит YYYY-MM-DD и пересобирает дату из компонентов
// год/месяц/день в локальной таймзоне сервера, чтобы исключить дрейф даты
// при сравнении с "началом сегодняшнего дня"
func parseCalendarDate(s string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// matchSlot находит самый ранний слот, содержащий указанное время и
// принимающий указанный тип услуги. Слоты уже отсортированы по времени
// начала по возрастанию. Ёмкость здесь не проверяется - её проверяет
// условный инкремент в репозитории
func matchSlot(slots []*domain.Slot, timeSlot types.TimeString, serviceType domain.ServiceType, rawService string) *domain.Slot {
	for _, s := range slots {
		if s.Contains(timeSlot) && s.AcceptsServiceType(serviceType, rawService) {
			return s
		}
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
