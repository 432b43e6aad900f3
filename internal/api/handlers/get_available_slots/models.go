package get_available_slots

import (
	"github.com/dsmirn0v/AQS-BookingService/internal/domain"
	getAvailableSlots "github.com/dsmirn0v/AQS-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

// Slot модель слота в ответе API
type Slot struct {
	ID             int64    `json:"id"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	MaxBookings    int      `json:"maxBookings"`
	BookedCount    int      `json:"bookedCount"`
	AvailableSpots int      `json:"availableSpots"`
	ServiceTypes   []string `json:"serviceTypes"`
	Notes          *string  `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		serviceTypes := s.ServiceTypes
		if serviceTypes == nil {
			serviceTypes = []string{}
		}
		slots[i] = Slot{
			ID:             s.ID,
			Date:           s.Date.Format(domain.DateFormat),
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			MaxBookings:    s.MaxBookings,
			BookedCount:    s.BookedCount,
			AvailableSpots: s.AvailableSpots,
			ServiceTypes:   serviceTypes,
			Notes:          s.Notes,
		}
	}

	return &SlotsResponse{Slots: slots}
}
