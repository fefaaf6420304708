package delete_equipment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	"github.com/m04kA/AgriRent-BookingService/internal/service/equipment"
)

const (
	msgInvalidEquipmentID = "некорректный ID техники"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "техника не найдена"
	msgForbidden          = "удалить технику может только владелец"
	msgHasBookings        = "у техники есть действующие заявки или бронирования"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /equipment/{id} - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /equipment/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), equipmentID, userID); err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("DELETE /equipment/{id} - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, equipment.ErrAccessDenied):
			h.logger.Warn("DELETE /equipment/{id} - Access denied: equipment_id=%d, user_id=%d", equipmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, equipment.ErrHasBookings):
			h.logger.Warn("DELETE /equipment/{id} - Has live bookings: equipment_id=%d", equipmentID)
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /equipment/{id} - Failed to delete equipment: equipment_id=%d, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /equipment/{id} - Equipment deleted: equipment_id=%d, user_id=%d", equipmentID, userID)
	w.WriteHeader(http.StatusNoContent)
}
