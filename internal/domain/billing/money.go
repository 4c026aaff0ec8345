package billing

import "errors"

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in integer cents. Tariff rates are whole cents, so every
// charge computed here is exact and rounding to two decimals is a no-op.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulBlocks(blocks int64) Money {
	return Money{cents: m.cents * blocks}
}

func (m Money) LessOrEqual(other Money) bool {
	return m.cents <= other.cents
}
