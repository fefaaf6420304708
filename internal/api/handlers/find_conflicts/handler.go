package find_conflicts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	findConflicts "github.com/m04kA/AgriRent-BookingService/internal/usecase/find_conflicts"
)

const (
	msgInvalidEquipmentID = "некорректный ID техники"
	msgInvalidBookingID   = "некорректный ID исключаемого бронирования"
	msgMissingDates       = "параметры startDate и endDate обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEquipmentNotFound  = "техника не найдена"
)

type Handler struct {
	useCase FindConflictsUseCase
	logger  Logger
}

func NewHandler(useCase FindConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment/{equipmentId}/conflicts
// Query params: startDate, endDate (required, YYYY-MM-DD), excludeBookingId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/conflicts - Invalid equipment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /equipment/{id}/conflicts - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := domain.ParseDate(startStr)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/conflicts - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := domain.ParseDate(endStr)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/conflicts - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &findConflicts.Request{
		EquipmentID: equipmentID,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if excludeStr := query.Get("excludeBookingId"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /equipment/{id}/conflicts - Invalid exclude booking ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findConflicts.ErrInvalidInput):
			h.logger.Warn("GET /equipment/{id}/conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, findConflicts.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id}/conflicts - Equipment not found: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		default:
			h.logger.Error("GET /equipment/{id}/conflicts - Failed to find conflicts: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment/{id}/conflicts - Conflicts found: equipment_id=%d, count=%d, hard=%t",
		equipmentID, len(result.Conflicts), result.HasHard)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
