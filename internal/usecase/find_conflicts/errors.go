package find_conflicts

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда техника не найдена
	ErrEquipmentNotFound = errors.New("find_conflicts: equipment not found")

	// ErrInvalidInput возвращается при некорректных входных данных (в том числе end < start)
	ErrInvalidInput = errors.New("find_conflicts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_conflicts: internal error")
)
