package domain

import (
	"time"

	"github.com/dsmirn0v/AQS-BookingService/pkg/types"
)

// Slot represents a staff-defined, capacity-bounded time window on a given
// date during which appointments may be booked
type Slot struct {
	ID           int64
	Date         time.Time // календарный день, время не используется
	StartTime    types.TimeString
	EndTime      types.TimeString
	MaxBookings  int
	BookedCount  int
	ServiceTypes []string // пустой список = слот доступен для всех типов услуг
	IsAvailable  bool
	CreatedBy    int64 // ID сотрудника, создавшего слот
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull returns true if the slot has no remaining capacity
func (s *Slot) IsFull() bool {
	return s.BookedCount >= s.MaxBookings
}

// Contains returns true if the given time falls inside the slot's
// half-open interval [StartTime, EndTime)
func (s *Slot) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.StartTime) && t.IsBefore(s.EndTime)
}

// Overlaps returns true if the slot's interval overlaps [start, end).
// Touching endpoints do not overlap: [09:00,10:00) and [10:00,11:00) coexist.
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && s.EndTime.IsAfter(start)
}

// AcceptsServiceType returns true if the slot serves the given service type.
// An empty ServiceTypes list means the slot is open to all types. The raw
// (un-normalized) value is also matched for backward compatibility with slots
// created before input normalization was introduced.
func (s *Slot) AcceptsServiceType(normalized ServiceType, raw string) bool {
	if len(s.ServiceTypes) == 0 {
		return true
	}
	for _, st := range s.ServiceTypes {
		if st == string(normalized) || st == raw {
			return true
		}
	}
	return false
}

// SlotFilter фильтр для выборки слотов
type SlotFilter struct {
	StartDate     *time.Time   // Начало периода включительно (опционально)
	EndDate       *time.Time   // Конец периода включительно (опционально)
	ServiceType   *ServiceType // Фильтр по типу услуги (nil = все типы)
	OnlyAvailable bool         // Только доступные и незаполненные слоты
}
