package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при синтаксически некорректной дате фильтра
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrUnknownServiceType возвращается при неизвестном типе услуги
	ErrUnknownServiceType = errors.New("get_available_slots: unknown service type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
