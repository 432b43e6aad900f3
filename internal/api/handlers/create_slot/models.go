package create_slot

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	createSlot "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_slot"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date         string   `json:"date"`      // "2025-10-15"
	StartTime    string   `json:"startTime"` // "09:00"
	EndTime      string   `json:"endTime"`   // "10:00"
	MaxBookings  *int     `json:"maxBookings,omitempty"`
	ServiceTypes []string `json:"serviceTypes,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID           int64    `json:"id"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	MaxBookings  int      `json:"maxBookings"`
	BookedCount  int      `json:"bookedCount"`
	ServiceTypes []string `json:"serviceTypes"`
	IsAvailable  bool     `json:"isAvailable"`
	CreatedBy    int64    `json:"createdBy"`
	Notes        *string  `json:"notes,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotRequest) ToUseCaseRequest(createdBy int64) *createSlot.Request {
	return &createSlot.Request{
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		MaxBookings:  r.MaxBookings,
		ServiceTypes: r.ServiceTypes,
		Notes:        r.Notes,
		CreatedBy:    createdBy,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSlot.Response) *SlotResponse {
	serviceTypes := resp.ServiceTypes
	if serviceTypes == nil {
		serviceTypes = []string{}
	}
	return &SlotResponse{
		ID:           resp.ID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		MaxBookings:  resp.MaxBookings,
		BookedCount:  resp.BookedCount,
		ServiceTypes: serviceTypes,
		IsAvailable:  resp.IsAvailable,
		CreatedBy:    resp.CreatedBy,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
