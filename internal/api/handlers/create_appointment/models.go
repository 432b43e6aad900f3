package create_appointment

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	createAppointment "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceType string  `json:"serviceType"`
	Date        string  `json:"date"`     // "2025-10-15"
	TimeSlot    string  `json:"timeSlot"` // "09:30"
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID передается из principal-а, nil для гостевого бронирования
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID *int64) *createAppointment.Request {
	return &createAppointment.Request{
		UserID:      userID,
		ServiceType: r.ServiceType,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		ServiceType: resp.ServiceType,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Address:     resp.Address,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
