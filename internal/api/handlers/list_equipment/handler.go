package list_equipment

import (
	"net/http"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAvailable(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipment - Equipment listed: count=%d", len(result.Equipment))
	handlers.RespondJSON(w, http.StatusOK, result.Equipment)
}
