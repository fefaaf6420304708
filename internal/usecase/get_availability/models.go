package get_availability

import "time"

// Request модель запроса календаря занятости
type Request struct {
	EquipmentID int64
}

// Response модель календаря занятости техники
type Response struct {
	EquipmentID    int64
	AvailableFrom  time.Time
	AvailableTill  *time.Time
	PendingDates   []time.Time // Даты под заявками в ожидании (предварительно заняты)
	ConfirmedDates []time.Time // Даты под подтвержденными бронированиями
}
