package reject_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reject_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет техникой
	ErrAccessDenied = errors.New("reject_booking: access denied")

	// ErrInvalidTransition возвращается, когда бронирование уже не в статусе pending
	ErrInvalidTransition = errors.New("reject_booking: booking is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_booking: internal error")
)
