package models

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// AppointmentResponse модель бронирования для выдачи наружу
// Содержит минимальные отображаемые поля заявителя (имя, email)
type AppointmentResponse struct {
	ID          int64
	UserID      *int64
	ServiceType string
	Date        time.Time
	TimeSlot    types.TimeString
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	Notes       *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status    string
	Principal domain.Principal
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		ServiceType: string(a.ServiceType),
		Date:        a.Date,
		TimeSlot:    a.TimeSlot,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		Notes:       a.Notes,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(list))
	for i, a := range list {
		result[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{Appointments: result}
}
