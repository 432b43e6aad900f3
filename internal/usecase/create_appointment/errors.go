package create_appointment

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_appointment: required fields are missing")

	// ErrUnknownServiceType возвращается при неизвестном типе услуги
	ErrUnknownServiceType = errors.New("create_appointment: unknown service type")

	// ErrInvalidDate возвращается при синтаксически некорректной дате
	ErrInvalidDate = errors.New("create_appointment: invalid date")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrInvalidTimeSlot возвращается при некорректном формате времени
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot format")

	// ErrSlotFull возвращается, когда подходящего слота нет или его ёмкость исчерпана
	// Единственная ошибка, штатно возникающая под конкурентной нагрузкой
	ErrSlotFull = errors.New("create_appointment: selected time slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
