//go:build unit

package billing_test

import (
	"testing"
	"time"

	"parklot/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRates = billing.Rates{
	Fraction30: billing.MustMoney(500),
	Hourly:     billing.MustMoney(800),
	Daily:      billing.MustMoney(4000),
	Monthly:    billing.MustMoney(60000),
}

func calculate(t *testing.T, elapsed time.Duration, kind billing.TariffKind) billing.Money {
	t.Helper()
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	charge, err := billing.NewCalculator().Calculate(entry, entry.Add(elapsed), kind, testRates)
	require.NoError(t, err)
	return charge
}

func TestCalculator_Fraction30(t *testing.T) {
	testCases := []struct {
		name          string
		elapsed       time.Duration
		expectedCents int64
	}{
		{name: "zero duration charges one block", elapsed: 0, expectedCents: 500},
		{name: "one minute charges one block", elapsed: time.Minute, expectedCents: 500},
		{name: "29 minutes is one block", elapsed: 29 * time.Minute, expectedCents: 500},
		{name: "30 minutes exactly is one block", elapsed: 30 * time.Minute, expectedCents: 500},
		{name: "31 minutes starts a second block", elapsed: 31 * time.Minute, expectedCents: 1000},
		{name: "90 minutes is three blocks", elapsed: 90 * time.Minute, expectedCents: 1500},
		{name: "91 minutes is four blocks", elapsed: 91 * time.Minute, expectedCents: 2000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			charge := calculate(t, tc.elapsed, billing.KindFraction30)
			assert.Equal(t, tc.expectedCents, charge.Cents())
		})
	}
}

func TestCalculator_Hourly(t *testing.T) {
	testCases := []struct {
		name          string
		elapsed       time.Duration
		expectedCents int64
	}{
		{name: "zero duration charges one hour", elapsed: 0, expectedCents: 800},
		{name: "59 minutes is one hour", elapsed: 59 * time.Minute, expectedCents: 800},
		{name: "60 minutes exactly is one hour", elapsed: time.Hour, expectedCents: 800},
		{name: "61 minutes starts a second hour", elapsed: 61 * time.Minute, expectedCents: 1600},
		{name: "10 hours", elapsed: 10 * time.Hour, expectedCents: 8000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			charge := calculate(t, tc.elapsed, billing.KindHourly)
			assert.Equal(t, tc.expectedCents, charge.Cents())
		})
	}
}

func TestCalculator_Daily(t *testing.T) {
	testCases := []struct {
		name          string
		elapsed       time.Duration
		expectedCents int64
	}{
		{name: "short stay bills hourly", elapsed: 2 * time.Hour, expectedCents: 1600},
		{name: "under 24h capped at daily rate", elapsed: 8 * time.Hour, expectedCents: 4000},
		{name: "exactly at the cap prefers hourly", elapsed: 5 * time.Hour, expectedCents: 4000},
		{name: "exactly 24 hours is one day", elapsed: 24 * time.Hour, expectedCents: 4000},
		{name: "30 hours is one day plus six hours", elapsed: 30 * time.Hour, expectedCents: 8800},
		{name: "48 hours is two days", elapsed: 48 * time.Hour, expectedCents: 8000},
		{name: "49 hours adds one hourly block", elapsed: 49 * time.Hour, expectedCents: 8800},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			charge := calculate(t, tc.elapsed, billing.KindDaily)
			assert.Equal(t, tc.expectedCents, charge.Cents())
		})
	}
}

func TestCalculator_Monthly(t *testing.T) {
	t.Run("flat rate regardless of duration", func(t *testing.T) {
		assert.Equal(t, int64(60000), calculate(t, time.Hour, billing.KindMonthly).Cents())
		assert.Equal(t, int64(60000), calculate(t, 40*24*time.Hour, billing.KindMonthly).Cents())
	})
}

func TestCalculator_UnknownKind(t *testing.T) {
	entry := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := billing.NewCalculator().Calculate(entry, entry.Add(time.Hour), billing.TariffKind("WEEKLY"), testRates)
	assert.ErrorIs(t, err, billing.ErrUnknownTariffKind)
}

func TestCalculator_SuggestTariff(t *testing.T) {
	testCases := []struct {
		name      string
		estimated time.Duration
		expected  billing.TariffKind
	}{
		{name: "short stay suggests fraction blocks", estimated: 45 * time.Minute, expected: billing.KindFraction30},
		{name: "exactly one hour still fraction", estimated: time.Hour, expected: billing.KindFraction30},
		{name: "mid-length stay suggests hourly", estimated: 4 * time.Hour, expected: billing.KindHourly},
		{name: "ten hours still hourly", estimated: 10 * time.Hour, expected: billing.KindHourly},
		{name: "longer stay suggests daily", estimated: 11 * time.Hour, expected: billing.KindDaily},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, billing.NewCalculator().SuggestTariff(tc.estimated))
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := billing.NewMoney(-1)
		assert.ErrorIs(t, err, billing.ErrNegativeMoney)
	})

	t.Run("arithmetic stays in cents", func(t *testing.T) {
		m := billing.MustMoney(150)
		assert.Equal(t, int64(450), m.MulBlocks(3).Cents())
		assert.Equal(t, int64(250), m.Add(billing.MustMoney(100)).Cents())
		assert.Equal(t, 1.5, m.Units())
	})
}
