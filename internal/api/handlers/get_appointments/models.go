package get_appointments

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	"github.com/dsmirn0v/AQS-BookingService/internal/service/appointments/models"
)

// AppointmentsResponse HTTP response model
type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// Appointment модель бронирования в ответе API
type Appointment struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"userId,omitempty"`
	ServiceType string  `json:"serviceType"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Notes       *string `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentsResponse {
	appointments := make([]Appointment, len(resp.Appointments))
	for i, a := range resp.Appointments {
		appointments[i] = Appointment{
			ID:          a.ID,
			UserID:      a.UserID,
			ServiceType: a.ServiceType,
			Date:        a.Date.Format(domain.DateFormat),
			TimeSlot:    a.TimeSlot.String(),
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Email:       a.Email,
			Phone:       a.Phone,
			Address:     a.Address,
			Notes:       a.Notes,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentsResponse{Appointments: appointments}
}
