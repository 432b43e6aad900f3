package create_slot

import (
	"errors"
	"net/http"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	"github.com/dsmirn0v/AQS-BookingService/internal/api/middleware"
	createSlot "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_slot"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingFields       = "required fields are missing"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast          = "date must not be in the past"
	msgInvalidTime         = "invalid time format, expected HH:MM"
	msgEndBeforeStart      = "end time must be after start time"
	msgInvalidMaxBookings  = "maxBookings must be between 1 and 20"
	msgInvalidServiceTypes = "no valid service types provided"
	msgSlotOverlap         = "slot overlaps an existing slot on this date"
	msgForbidden           = "insufficient permissions"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
// Требует principal с ролью STAFF или ADMIN
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}
	if !principal.Role.CanManageSlots() {
		h.logger.Warn("POST /slots - Forbidden for user_id=%d role=%s", principal.UserID, principal.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createSlot.ErrMissingFields):
			h.logger.Warn("POST /slots - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createSlot.ErrInvalidDate):
			h.logger.Warn("POST /slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createSlot.ErrDateInPast):
			h.logger.Warn("POST /slots - Date in past: user_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createSlot.ErrInvalidTime):
			h.logger.Warn("POST /slots - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createSlot.ErrEndBeforeStart):
			h.logger.Warn("POST /slots - End before start: user_id=%d", principal.UserID)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createSlot.ErrInvalidMaxBookings):
			h.logger.Warn("POST /slots - Invalid maxBookings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMaxBookings)

		case errors.Is(err, createSlot.ErrInvalidServiceTypes):
			h.logger.Warn("POST /slots - Invalid service types: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceTypes)

		case errors.Is(err, createSlot.ErrSlotOverlap):
			h.logger.Warn("POST /slots - Overlap: user_id=%d, date=%s", principal.UserID, req.Date)
			handlers.RespondBadRequest(w, msgSlotOverlap)

		default:
			h.logger.Error("POST /slots - Failed to create slot: user_id=%d, error=%v", principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, user_id=%d", result.ID, principal.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
