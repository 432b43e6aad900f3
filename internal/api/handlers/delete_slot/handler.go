package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dsmirn0v/AQS-BookingService/internal/api/handlers"
	"github.com/dsmirn0v/AQS-BookingService/internal/api/middleware"
	deleteSlot "github.com/dsmirn0v/AQS-BookingService/internal/usecase/delete_slot"
)

const (
	msgInvalidSlotID   = "invalid slot id"
	msgSlotNotFound    = "slot not found"
	msgSlotHasBookings = "cannot delete slot with existing bookings"
	msgForbidden       = "insufficient permissions"
)

// DeleteResponse маркер успешного удаления
type DeleteResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	useCase DeleteSlotUseCase
	logger  Logger
}

func NewHandler(useCase DeleteSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/slots?id={id}
// Требует principal с ролью STAFF или ADMIN
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}
	if !principal.Role.CanManageSlots() {
		h.logger.Warn("DELETE /slots - Forbidden for user_id=%d role=%s", principal.UserID, principal.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /slots - Invalid slot id: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.useCase.Execute(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, deleteSlot.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots - Slot not found: slot_id=%d", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, deleteSlot.ErrSlotHasBookings):
			h.logger.Warn("DELETE /slots - Slot has bookings: slot_id=%d", id)
			handlers.RespondBadRequest(w, msgSlotHasBookings)

		default:
			h.logger.Error("DELETE /slots - Failed to delete slot: slot_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots - Slot deleted successfully: slot_id=%d, user_id=%d", id, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Success: true})
}
