package create_appointment

import (
	"errors"
	"net/http"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	"github.com/dsmirn0v/AQS-BookingService/internal/api/middleware"
	createAppointment "github.com/dsmirn0v/AQS-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "required fields are missing"
	msgUnknownServiceType = "unknown service type"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast         = "date must not be in the past"
	msgInvalidTimeSlot    = "invalid time format, expected HH:MM"
	msgSlotFull           = "Selected time slot is no longer available"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Principal опционален: гостевые бронирования разрешены
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Привязываем бронирование к пользователю, если он аутентифицирован
	var userID *int64
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		userID = &principal.UserID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrMissingFields):
			h.logger.Warn("POST /appointments - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrUnknownServiceType):
			h.logger.Warn("POST /appointments - Unknown service type: %v", err)
			handlers.RespondBadRequest(w, msgUnknownServiceType)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotFull):
			// Единственная ошибка, штатная под конкурентной нагрузкой;
			// не должна превращаться в 500
			h.logger.Warn("POST /appointments - Slot full: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgSlotFull)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
