package billing

import (
	"errors"
	"time"
)

var ErrUnknownTariffKind = errors.New("unknown tariff kind")

// Calculator converts an entry/exit span into a charge under one of the four
// tariff policies. Pure computation; callers are responsible for rejecting
// exits that precede entries.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Calculate(entry, exit time.Time, kind TariffKind, rates Rates) (Money, error) {
	elapsed := exit.Sub(entry)

	switch kind {
	case KindFraction30:
		return c.fraction30(elapsed, rates.Fraction30), nil
	case KindHourly:
		return c.hourly(elapsed, rates.Hourly), nil
	case KindDaily:
		return c.daily(elapsed, rates.Daily, rates.Hourly), nil
	case KindMonthly:
		return rates.Monthly, nil
	default:
		return Money{}, ErrUnknownTariffKind
	}
}

// fraction30 charges per started 30-minute block, minimum one block.
func (c *Calculator) fraction30(elapsed time.Duration, rate Money) Money {
	minutes := int64(elapsed.Minutes())
	blocks := (minutes + 29) / 30
	if blocks <= 0 {
		blocks = 1
	}
	return rate.MulBlocks(blocks)
}

// hourly charges per started hour, minimum one hour.
func (c *Calculator) hourly(elapsed time.Duration, rate Money) Money {
	minutes := int64(elapsed.Minutes())
	hours := (minutes + 59) / 60
	if hours <= 0 {
		hours = 1
	}
	return rate.MulBlocks(hours)
}

// daily charges whole 24h periods at the daily rate plus leftover hours at
// the hourly rate. Under 24h the customer pays whichever is cheaper: the
// hourly total or a single daily cap.
func (c *Calculator) daily(elapsed time.Duration, daily, hourly Money) Money {
	hours := int64(elapsed.Hours())

	if hours >= 24 {
		fullDays := hours / 24
		extraHours := hours % 24
		return daily.MulBlocks(fullDays).Add(hourly.MulBlocks(extraHours))
	}

	hourlyCharge := c.hourly(elapsed, hourly)
	if hourlyCharge.LessOrEqual(daily) {
		return hourlyCharge
	}
	return daily
}

// SuggestTariff picks the cheapest-looking policy for an estimated stay.
// It is a hint for callers, not a pricing commitment.
func (c *Calculator) SuggestTariff(estimated time.Duration) TariffKind {
	minutes := int64(estimated.Minutes())
	hours := int64(estimated.Hours())

	switch {
	case minutes <= 60:
		return KindFraction30
	case hours <= 10:
		return KindHourly
	default:
		return KindDaily
	}
}
