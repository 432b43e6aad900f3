package create_slot

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_slot: required fields are missing")

	// ErrInvalidDate возвращается при синтаксически некорректной дате
	ErrInvalidDate = errors.New("create_slot: invalid date")

	// ErrDateInPast возвращается, когда дата слота раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_slot: date is in the past")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("create_slot: invalid time format")

	// ErrEndBeforeStart возвращается, когда время окончания не позже времени начала
	ErrEndBeforeStart = errors.New("create_slot: end time must be after start time")

	// ErrInvalidMaxBookings возвращается при ёмкости вне диапазона [1, 20]
	ErrInvalidMaxBookings = errors.New("create_slot: max bookings out of range")

	// ErrInvalidServiceTypes возвращается, когда передан непустой список типов
	// услуг, в котором нет ни одного известного значения
	ErrInvalidServiceTypes = errors.New("create_slot: no valid service types")

	// ErrSlotOverlap возвращается, когда интервал пересекается с существующим
	// слотом на ту же дату
	ErrSlotOverlap = errors.New("create_slot: slot overlaps an existing slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot: internal error")
)
