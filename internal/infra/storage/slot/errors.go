package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotFull возвращается, когда условный инкремент не затронул ни одной строки:
	// вся ёмкость слота уже выбрана
	ErrSlotFull = errors.New("slot.repository: slot capacity exhausted")

	// ErrSlotHasBookings возвращается, когда условное удаление не затронуло ни одной
	// строки из-за существующих бронирований
	ErrSlotHasBookings = errors.New("slot.repository: slot has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
