package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/dsmirn0v/AQS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgUnknownServiceType = "unknown service type"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: startDate, endDate (YYYY-MM-DD), serviceType (enum value or "all")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq := &getAvailableSlots.Request{
		StartDate:   query.Get("startDate"),
		EndDate:     query.Get("endDate"),
		ServiceType: query.Get("serviceType"),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrUnknownServiceType):
			h.logger.Warn("GET /slots - Unknown service type: %v", err)
			handlers.RespondBadRequest(w, msgUnknownServiceType)

		default:
			h.logger.Error("GET /slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: slots_count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
