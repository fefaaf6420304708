package domain

import (
	"sort"
	"time"
)

// Availability partitions the dates held on an equipment calendar
type Availability struct {
	EquipmentID    int64
	PendingDates   []time.Time
	ConfirmedDates []time.Time
}

// BuildAvailability expands pending and confirmed bookings into sorted,
// deduplicated calendar dates. A date held by both buckets appears in both.
func BuildAvailability(equipmentID int64, bookings []*Booking) Availability {
	pending := make(map[time.Time]struct{})
	confirmed := make(map[time.Time]struct{})

	for _, b := range bookings {
		var bucket map[time.Time]struct{}
		switch {
		case b.IsPending():
			bucket = pending
		case b.IsConfirmed():
			bucket = confirmed
		default:
			continue
		}
		for _, d := range b.Range().Dates() {
			bucket[d] = struct{}{}
		}
	}

	return Availability{
		EquipmentID:    equipmentID,
		PendingDates:   sortedDates(pending),
		ConfirmedDates: sortedDates(confirmed),
	}
}

func sortedDates(set map[time.Time]struct{}) []time.Time {
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
