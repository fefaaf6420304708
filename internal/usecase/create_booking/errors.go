package create_booking

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда техника не найдена
	ErrEquipmentNotFound = errors.New("create_booking: equipment not found")

	// ErrSelfRental возвращается при попытке арендовать собственную технику
	ErrSelfRental = errors.New("create_booking: owner cannot rent own equipment")

	// ErrOutOfAvailabilityWindow возвращается, когда даты выходят за окно доступности техники
	ErrOutOfAvailabilityWindow = errors.New("create_booking: requested dates are outside the availability window")

	// ErrDateRangeBooked возвращается, когда даты пересекаются с подтвержденным бронированием.
	// Оборачивается в domain.BookedRangeError с диапазоном конфликта
	ErrDateRangeBooked = errors.New("create_booking: date range is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
