package domain

// Pricing constants
const (
	// HoursPerDay billable hours in one day for per_hour listings
	HoursPerDay = 8
)

// Business validation constants
const (
	MinRentalDays          = 1
	MaxRentalDays          = 365
	MaxCancellationReason  = 500
	AutoCancellationReason = "another booking was approved for overlapping dates"
	OwnerRejectionReason   = "rejected by owner"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// LiveStatuses statuses considered by the conflict resolver
var LiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusActive,
}

// ConfirmedStatuses statuses that block new bookings
var ConfirmedStatuses = []BookingStatus{
	StatusApproved,
	StatusActive,
}
