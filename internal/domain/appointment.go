package domain

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ParseAppointmentStatus парсит статус из строки
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment represents a customer's (or guest's) request to be served
// during a specific time within a matching slot.
//
// The appointment does not store a foreign key to the slot it consumed: the
// matching slot is re-resolved by date and time containment at booking time,
// and capacity lives on the slot row.
type Appointment struct {
	ID          int64
	UserID      *int64 // nil = гостевое бронирование
	ServiceType ServiceType
	Date        time.Time // календарный день
	TimeSlot    types.TimeString

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Notes     *string

	Status AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGuest returns true if the appointment was booked without an account
func (a *Appointment) IsGuest() bool {
	return a.UserID == nil
}

// CanTransitionTo returns true if staff may move the appointment to the
// given status
func (a *Appointment) CanTransitionTo(status AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCancelled
	case StatusConfirmed:
		return status == StatusCancelled
	default:
		return false
	}
}

// AppointmentFilter фильтр для выборки бронирований
type AppointmentFilter struct {
	UserID *int64 // nil = без фильтра по пользователю (для staff/admin)
}
