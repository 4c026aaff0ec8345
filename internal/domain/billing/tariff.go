package billing

type TariffKind string

const (
	// KindFraction30 bills in 30-minute blocks, rounded up.
	KindFraction30 TariffKind = "FRACTION_30MIN"
	// KindHourly bills in whole-hour blocks, rounded up.
	KindHourly TariffKind = "HOURLY"
	// KindDaily bills whole 24h periods plus hourly remainder, capped at one
	// daily rate for stays under 24h.
	KindDaily TariffKind = "DAILY"
	// KindMonthly is a flat rate regardless of duration.
	KindMonthly TariffKind = "MONTHLY"
)

func (k TariffKind) String() string {
	return string(k)
}

func (k TariffKind) IsValid() bool {
	switch k {
	case KindFraction30, KindHourly, KindDaily, KindMonthly:
		return true
	default:
		return false
	}
}

// Rates is the pricing slice of the active lot configuration.
type Rates struct {
	Fraction30 Money
	Hourly     Money
	Daily      Money
	Monthly    Money
}
