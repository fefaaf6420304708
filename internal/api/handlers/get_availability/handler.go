package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/AgriRent-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidEquipmentID = "некорректный ID техники"
	msgEquipmentNotFound  = "техника не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment/{equipmentId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем equipmentId из URL
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/availability - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{EquipmentID: equipmentID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /equipment/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)

		case errors.Is(err, getAvailability.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id}/availability - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		default:
			h.logger.Error("GET /equipment/{id}/availability - Failed to get availability: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment/{id}/availability - Availability retrieved: equipment_id=%d, pending=%d, confirmed=%d",
		equipmentID, len(result.PendingDates), len(result.ConfirmedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
