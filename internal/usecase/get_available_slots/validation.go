package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
)

// serviceTypeAll специальное значение фильтра "все типы услуг"
const serviceTypeAll = "all"

// buildFilter валидирует параметры запроса и собирает фильтр для репозитория
func buildFilter(req *Request) (domain.SlotFilter, error) {
	filter := domain.SlotFilter{OnlyAvailable: true}

	if req.StartDate != "" {
		start, err := parseCalendarDate(req.StartDate)
		if err != nil {
			return domain.SlotFilter{}, err
		}
		filter.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := parseCalendarDate(req.EndDate)
		if err != nil {
			return domain.SlotFilter{}, err
		}
		filter.EndDate = &end
	}

	// "all" и пустая строка означают отсутствие фильтра по типу услуги
	if req.ServiceType != "" && !strings.EqualFold(req.ServiceType, serviceTypeAll) {
		serviceType, ok := domain.NormalizeServiceType(req.ServiceType)
		if !ok {
			return domain.SlotFilter{}, fmt.Errorf("%w: %q", ErrUnknownServiceType, req.ServiceType)
		}
		filter.ServiceType = &serviceType
	}

	return filter, nil
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
