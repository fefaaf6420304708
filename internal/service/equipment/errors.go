package equipment

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда техника не найдена
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет техникой
	ErrAccessDenied = errors.New("access denied")

	// ErrHasBookings возвращается при удалении техники с действующими заявками или бронированиями
	ErrHasBookings = errors.New("equipment has pending or confirmed bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
