package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, id int64, status BookingStatus, start, end string) *Booking {
	return &Booking{
		ID:          id,
		EquipmentID: 1,
		UserID:      100 + id,
		StartDate:   date(t, start),
		EndDate:     date(t, end),
		Status:      status,
	}
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [2]string
		expected bool
	}{
		{"touching boundary date", [2]string{"2024-05-01", "2024-05-04"}, [2]string{"2024-05-04", "2024-05-06"}, true},
		{"adjacent days", [2]string{"2024-05-01", "2024-05-04"}, [2]string{"2024-05-05", "2024-05-07"}, false},
		{"contained", [2]string{"2024-05-01", "2024-05-10"}, [2]string{"2024-05-03", "2024-05-04"}, true},
		{"same single day", [2]string{"2024-05-01", "2024-05-01"}, [2]string{"2024-05-01", "2024-05-01"}, true},
		{"before", [2]string{"2024-04-01", "2024-04-03"}, [2]string{"2024-05-01", "2024-05-03"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewDateRange(date(t, tt.a[0]), date(t, tt.a[1]))
			b := NewDateRange(date(t, tt.b[0]), date(t, tt.b[1]))
			assert.Equal(t, tt.expected, a.Overlaps(b))
			assert.Equal(t, tt.expected, b.Overlaps(a))
		})
	}
}

func TestRentalRange_SpansDaysPlusOne(t *testing.T) {
	r := RentalRange(date(t, "2024-05-01"), 3)

	assert.Equal(t, date(t, "2024-05-04"), r.End)
	assert.Len(t, r.Dates(), 4)
}

func TestFindConflicts_ClassifiesSeverity(t *testing.T) {
	bookings := []*Booking{
		booking(t, 1, StatusPending, "2024-05-01", "2024-05-04"),
		booking(t, 2, StatusApproved, "2024-05-03", "2024-05-05"),
		booking(t, 3, StatusActive, "2024-05-04", "2024-05-04"),
		booking(t, 4, StatusCancelled, "2024-05-01", "2024-05-10"),
		booking(t, 5, StatusApproved, "2024-06-01", "2024-06-03"),
	}

	conflicts := FindConflicts(NewDateRange(date(t, "2024-05-04"), date(t, "2024-05-06")), bookings, nil)

	require.Len(t, conflicts, 3)
	assert.Equal(t, SeveritySoft, conflicts[0].Severity)
	assert.Equal(t, int64(1), conflicts[0].BookingID)
	assert.Equal(t, SeverityHard, conflicts[1].Severity)
	assert.Equal(t, SeverityHard, conflicts[2].Severity)

	hard, ok := FirstHard(conflicts)
	require.True(t, ok)
	assert.Equal(t, int64(2), hard.BookingID)
	assert.Equal(t, date(t, "2024-05-03"), hard.Range.Start)

	assert.Len(t, SoftConflicts(conflicts), 1)
}

func TestFindConflicts_ExcludesBooking(t *testing.T) {
	bookings := []*Booking{
		booking(t, 1, StatusPending, "2024-05-01", "2024-05-04"),
		booking(t, 2, StatusPending, "2024-05-03", "2024-05-05"),
	}
	exclude := int64(1)

	conflicts := FindConflicts(bookings[0].Range(), bookings, &exclude)

	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(2), conflicts[0].BookingID)
	_, ok := FirstHard(conflicts)
	assert.False(t, ok)
}

func TestFindConflicts_NoOverlap(t *testing.T) {
	bookings := []*Booking{booking(t, 1, StatusApproved, "2024-05-01", "2024-05-04")}

	conflicts := FindConflicts(NewDateRange(date(t, "2024-05-05"), date(t, "2024-05-07")), bookings, nil)

	assert.Empty(t, conflicts)
}
