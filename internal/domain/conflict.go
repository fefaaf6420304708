package domain

// ConflictSeverity tells whether a conflicting booking blocks a request
type ConflictSeverity string

const (
	// SeveritySoft conflict with a pending booking, does not block
	SeveritySoft ConflictSeverity = "soft"
	// SeverityHard conflict with an approved or active booking
	SeverityHard ConflictSeverity = "hard"
)

// Conflict is an existing booking overlapping a requested range
type Conflict struct {
	BookingID int64
	UserID    int64
	Status    BookingStatus
	Range     DateRange
	Severity  ConflictSeverity
}

// IsHard reports whether the conflict blocks confirmation
func (c Conflict) IsHard() bool {
	return c.Severity == SeverityHard
}

// FindConflicts returns every live booking overlapping the requested range.
// Cancelled bookings and the booking with id excludeID (when set) are ignored.
func FindConflicts(requested DateRange, bookings []*Booking, excludeID *int64) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, b := range bookings {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}

		var severity ConflictSeverity
		switch {
		case b.IsConfirmed():
			severity = SeverityHard
		case b.IsPending():
			severity = SeveritySoft
		default:
			continue
		}

		if !requested.Overlaps(b.Range()) {
			continue
		}

		conflicts = append(conflicts, Conflict{
			BookingID: b.ID,
			UserID:    b.UserID,
			Status:    b.Status,
			Range:     b.Range(),
			Severity:  severity,
		})
	}

	return conflicts
}

// FirstHard returns the first hard conflict, if any
func FirstHard(conflicts []Conflict) (Conflict, bool) {
	for _, c := range conflicts {
		if c.IsHard() {
			return c, true
		}
	}
	return Conflict{}, false
}

// SoftConflicts returns only the pending bookings among the conflicts
func SoftConflicts(conflicts []Conflict) []Conflict {
	soft := make([]Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		if !c.IsHard() {
			soft = append(soft, c)
		}
	}
	return soft
}
