package get_appointments

import (
	"net/http"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	"github.com/dsmirn0v/AQS-BookingService/internal/api/middleware"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Клиент видит только свои бронирования, staff/admin видят все
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	result, err := h.service.ListForPrincipal(r.Context(), principal)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v",
			principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		principal.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
