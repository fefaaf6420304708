package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено у пользователя
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
