package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgriRent-BookingService/internal/api/handlers"
	"github.com/m04kA/AgriRent-BookingService/internal/api/middleware"
	approveBooking "github.com/m04kA/AgriRent-BookingService/internal/usecase/approve_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "бронирование не найдено"
	msgForbidden         = "одобрять заявку может только владелец техники"
	msgInvalidTransition = "заявка уже обработана"
	msgAlreadyBooked     = "на эти даты уже есть подтвержденное бронирование"
)

type Handler struct {
	useCase ApproveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ApproveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/approve - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveBooking.Request{
		BookingID: bookingID,
		OwnerID:   ownerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/approve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, approveBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/approve - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/approve - Access denied: booking_id=%d, user_id=%d", bookingID, ownerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveBooking.ErrAlreadyBooked):
			h.logger.Warn("PATCH /bookings/{id}/approve - Dates already booked: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBookedRange(w, msgAlreadyBooked, err)

		case errors.Is(err, approveBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/approve - Invalid transition: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/approve - Failed to approve booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/approve - Booking approved: booking_id=%d, auto_cancelled=%v",
		bookingID, result.CancelledBookingIDs)
	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
