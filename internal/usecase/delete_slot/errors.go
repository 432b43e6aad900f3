package delete_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("delete_slot: slot not found")

	// ErrSlotHasBookings возвращается, когда слот нельзя удалить из-за
	// существующих бронирований
	ErrSlotHasBookings = errors.New("delete_slot: cannot delete slot with existing bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_slot: internal error")
)
