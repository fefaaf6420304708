package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEquipmentNotFound  = "техника не найдена"
	msgSelfRental         = "нельзя арендовать собственную технику"
	msgOutOfWindow        = "выбранные даты вне периода доступности техники"
	msgDateRangeBooked    = "выбранные даты уже забронированы"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSelfRental):
			h.logger.Warn("POST /bookings - Self rental: user_id=%d, equipment_id=%d", userID, req.EquipmentID)
			handlers.RespondBadRequest(w, msgSelfRental)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrOutOfAvailabilityWindow):
			h.logger.Warn("POST /bookings - Out of availability window: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOutOfWindow)

		case errors.Is(err, createBooking.ErrDateRangeBooked):
			h.logger.Warn("POST /bookings - Date range booked: equipment_id=%d, error=%v", req.EquipmentID, err)
			handlers.RespondBookedRange(w, msgDateRangeBooked, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, equipment_id=%d, error=%v",
				userID, req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, equipment_id=%d",
		result.ID, userID, result.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
