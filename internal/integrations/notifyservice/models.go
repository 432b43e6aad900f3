package notifyservice

// AppointmentConfirmation запрос на отправку письма-подтверждения бронирования
// Шаблонизация и доставка - зона ответственности сервиса уведомлений
type AppointmentConfirmation struct {
	AppointmentID int64  `json:"appointment_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ServiceType   string `json:"service_type"`
	Date          string `json:"date"`      // YYYY-MM-DD
	TimeSlot      string `json:"time_slot"` // HH:MM
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
