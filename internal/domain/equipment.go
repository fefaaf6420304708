package domain

import "time"

// PricingType defines how the listing price is applied to a rental
type PricingType string

const (
	PricingPerDay    PricingType = "per_day"
	PricingPerHour   PricingType = "per_hour"
	PricingPerAcre   PricingType = "per_acre"
	PricingPerSeason PricingType = "per_season"
)

// Valid reports whether the pricing type is known
func (p PricingType) Valid() bool {
	switch p {
	case PricingPerDay, PricingPerHour, PricingPerAcre, PricingPerSeason:
		return true
	default:
		return false
	}
}

// Equipment is a listing in the catalog
type Equipment struct {
	ID          int64
	OwnerID     int64
	Title       string
	Category    string
	Name        string
	Brand       *string
	Condition   *string
	Description *string

	State       string
	District    string
	VillageCity string

	Price             float64
	PricingType       PricingType
	TransportIncluded bool
	TransportCharge   float64

	AvailableFrom time.Time
	AvailableTill *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID owns the listing
func (e *Equipment) IsOwnedBy(userID int64) bool {
	return e.OwnerID == userID
}

// Covers reports whether the rental range fits the availability window:
// start on or after AvailableFrom and, when AvailableTill is set, end on or before it.
func (e *Equipment) Covers(r DateRange) bool {
	if DateOf(r.Start).Before(DateOf(e.AvailableFrom)) {
		return false
	}
	if e.AvailableTill != nil && DateOf(r.End).After(DateOf(*e.AvailableTill)) {
		return false
	}
	return true
}

// IsListed reports whether the listing is still offered on the given day
func (e *Equipment) IsListed(now time.Time) bool {
	return e.AvailableTill == nil || !DateOf(*e.AvailableTill).Before(DateOf(now))
}
