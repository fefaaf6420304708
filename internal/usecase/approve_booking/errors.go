package approve_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("approve_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет техникой
	ErrAccessDenied = errors.New("approve_booking: access denied")

	// ErrInvalidTransition возвращается, когда бронирование уже не в статусе pending
	ErrInvalidTransition = errors.New("approve_booking: booking is not pending")

	// ErrAlreadyBooked возвращается, когда даты уже заняты подтвержденным бронированием.
	// Оборачивается в domain.BookedRangeError с диапазоном конфликта
	ErrAlreadyBooked = errors.New("approve_booking: dates are already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_booking: internal error")
)
