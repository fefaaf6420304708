package domain

import "time"

// BookingStatus represents the persisted status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusActive    BookingStatus = "active"
	StatusCancelled BookingStatus = "cancelled"
)

// DisplayStatusExpired is shown instead of approved/active once the rental is over.
// It is never stored.
const DisplayStatusExpired = "expired"

// Booking represents a rental request for one piece of equipment
type Booking struct {
	ID          int64
	EquipmentID int64
	UserID      int64 // requester
	OwnerID     int64 // equipment owner at creation time
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Status      BookingStatus

	BaseAmount      float64
	TransportAmount float64
	TotalAmount     float64

	// Denormalized for history
	EquipmentTitle string
	PricingType    PricingType

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the inclusive date range occupied by the booking
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// IsPending returns true while the owner has not decided yet
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true for approved and active bookings (hard holds)
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusApproved || b.Status == StatusActive
}

// IsLive returns true for every status that holds dates
func (b *Booking) IsLive() bool {
	return b.IsPending() || b.IsConfirmed()
}

// IsExpired reports whether a confirmed booking ended before the given day
func (b *Booking) IsExpired(now time.Time) bool {
	return b.IsConfirmed() && DateOf(b.EndDate).Before(DateOf(now))
}

// DisplayStatus returns the status presented to users at read time
func (b *Booking) DisplayStatus(now time.Time) string {
	if b.IsExpired(now) {
		return DisplayStatusExpired
	}
	return string(b.Status)
}

// DaysRemaining returns the number of days until the end date, 0 when expired or already past
func (b *Booking) DaysRemaining(now time.Time) int {
	if b.IsExpired(now) {
		return 0
	}
	days := DaysBetween(DateOf(now), DateOf(b.EndDate))
	if days < 0 {
		return 0
	}
	return days
}

// OwnerBookingsFilter filters the bookings of an owner's equipment
type OwnerBookingsFilter struct {
	OwnerID     int64
	EquipmentID *int64
	Status      *BookingStatus
}
