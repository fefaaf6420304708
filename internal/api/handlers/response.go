package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/AgriRent-BookingService/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConflictResponse тело ответа 409 с диапазоном занятых дат
type ConflictResponse struct {
	Code              int    `json:"code"`
	Message           string `json:"message"`
	ConflictBookingID int64  `json:"conflictBookingId"`
	ConflictStartDate string `json:"conflictStartDate"`
	ConflictEndDate   string `json:"conflictEndDate"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с кодом status
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500 без деталей ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondBookedRange отправляет 409 с диапазоном подтвержденного бронирования,
// если err содержит domain.BookedRangeError
func RespondBookedRange(w http.ResponseWriter, message string, err error) {
	var booked *domain.BookedRangeError
	if !errors.As(err, &booked) {
		RespondConflict(w, message)
		return
	}

	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Code:              http.StatusConflict,
		Message:           message,
		ConflictBookingID: booked.BookingID,
		ConflictStartDate: booked.Range.Start.Format(domain.DateFormat),
		ConflictEndDate:   booked.Range.End.Format(domain.DateFormat),
	})
}
