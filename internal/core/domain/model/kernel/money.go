package kernel

import (
	"fmt"

	"foodfast/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when constructing a Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is a non-negative currency amount with two-decimal precision.
// It backs menu prices, line totals, and order totals. Arithmetic follows the
// pricing policy of the ordering flow: multiplication rounds the result to two
// decimal places immediately, and totals are sums of already-rounded values.
//
// The zero value is a valid zero amount, so Money can be summed with Add
// starting from Money{}.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromFloat builds a Money from a float amount, rounding to two
// decimal places. Negative amounts are rejected.
func NewMoneyFromFloat(value float64) (Money, error) {
	if value < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: decimal.NewFromFloat(value).Round(2)}, nil
}

// MustMoneyFromFloat is NewMoneyFromFloat for trusted constants, panicking on
// a negative amount. Intended for tests and fixtures.
func MustMoneyFromFloat(value float64) Money {
	m, err := NewMoneyFromFloat(value)
	if err != nil {
		panic(err)
	}
	return m
}

// MulQuantity multiplies the amount by a quantity and rounds the result to
// two decimal places. This is the per-line rounding step of the pricing
// policy: each line total is rounded independently before totals are summed.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(2)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Float64 returns the amount as a float for response serialization.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimal places, e.g. "23.48".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Validate rejects negative amounts rehydrated from storage.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
