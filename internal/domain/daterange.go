package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range, normalising both ends to midnight UTC
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

// RentalRange returns the range covered by a rental of n days starting at start.
// The end date is start+days, so the range spans days+1 calendar dates.
func RentalRange(start time.Time, days int) DateRange {
	s := DateOf(start)
	return DateRange{Start: s, End: s.AddDate(0, 0, days)}
}

// Valid reports whether End is not before Start
func (r DateRange) Valid() bool {
	return !r.End.Before(r.Start)
}

// Overlaps reports whether two inclusive ranges share at least one date.
// Ranges touching on a single boundary date overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !(DateOf(r.End).Before(DateOf(o.Start)) || DateOf(r.Start).After(DateOf(o.End)))
}

// Dates expands the range into individual calendar dates
func (r DateRange) Dates() []time.Time {
	start, end := DateOf(r.Start), DateOf(r.End)
	if end.Before(start) {
		return nil
	}
	dates := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// ParseDate parses YYYY-MM-DD into midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// DateOf truncates t to its calendar date at midnight UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
