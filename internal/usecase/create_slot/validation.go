package create_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// validated результат успешной валидации запроса
type validated struct {
	date         time.Time
	startTime    types.TimeString
	endTime      types.TimeString
	maxBookings  int
	serviceTypes []string
}

// validateRequest валидирует запрос на создание слота
func validateRequest(req *Request, now time.Time) (*validated, error) {
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date", ErrMissingFields)
	}
	if strings.TrimSpace(req.StartTime) == "" {
		return nil, fmt.Errorf("%w: startTime", ErrMissingFields)
	}
	if strings.TrimSpace(req.EndTime) == "" {
		return nil, fmt.Errorf("%w: endTime", ErrMissingFields)
	}

	// Дата слота: синтаксис и не раньше сегодняшнего дня
	// Сравнение с точностью до календарного дня: слоты "на сегодня"
	// разрешены в любое время суток
	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}
	if isDateInPast(date, now) {
		return nil, ErrDateInPast
	}

	// Время начала и окончания в формате HH:MM
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidTime, err)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidTime, err)
	}

	// Сравнение в минутах с полуночи: конец строго позже начала
	if endTime.Minutes() <= startTime.Minutes() {
		return nil, ErrEndBeforeStart
	}

	// Ёмкость слота в диапазоне [1, 20], по умолчанию 1
	maxBookings := domain.DefaultMaxBookings
	if req.MaxBookings != nil {
		maxBookings = *req.MaxBookings
	}
	if maxBookings < domain.MinMaxBookings || maxBookings > domain.MaxMaxBookings {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidMaxBookings, maxBookings, domain.MinMaxBookings, domain.MaxMaxBookings)
	}

	// Неизвестные типы услуг молча отбрасываются, но непустой список,
	// целиком состоящий из неизвестных значений - жёсткая ошибка,
	// а не слот "для всех типов"
	serviceTypes, err := filterServiceTypes(req.ServiceTypes)
	if err != nil {
		return nil, err
	}

	return &validated{
		date:         date,
		startTime:    startTime,
		endTime:      endTime,
		maxBookings:  maxBookings,
		serviceTypes: serviceTypes,
	}, nil
}

// filterServiceTypes отбрасывает неизвестные типы услуг из списка
func filterServiceTypes(raw []string) ([]string, error) {
	kept := make([]string, 0, len(raw))
	for _, s := range raw {
		if st, ok := domain.NormalizeServiceType(s); ok {
			kept = append(kept, string(st))
		}
	}
	if len(raw) > 0 && len(kept) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServiceTypes, raw)
	}
	return kept, nil
}

// parseCalendarDate парсит YYYY-MM-DD в дату в локальной таймзоне сервера
func parseCalendarDate(s string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
