package domain

// Amount is the price breakdown of a rental, fixed at creation time
type Amount struct {
	Base      float64
	Transport float64
	Total     float64
}

// CalculateAmount prices a rental of the given number of days.
// per_season is a flat price regardless of days. Transport is charged
// only when the listing does not include it.
func CalculateAmount(e *Equipment, days int) Amount {
	var base float64

	switch e.PricingType {
	case PricingPerDay, PricingPerAcre:
		base = e.Price * float64(days)
	case PricingPerHour:
		base = e.Price * float64(days) * HoursPerDay
	default:
		base = e.Price
	}

	var transport float64
	if !e.TransportIncluded {
		transport = e.TransportCharge
	}

	return Amount{
		Base:      base,
		Transport: transport,
		Total:     base + transport,
	}
}
