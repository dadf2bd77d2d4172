package kernel

import (
	"fmt"

	"zones/internal/pkg/errs"
	"zones/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable value object representing a monetary amount as
// integer cents. All fee and minimum-order arithmetic in the domain is done
// on integer cents; floating point is never involved, so amounts compare and
// add without rounding drift.
//
// Example:
//
//	fee, err := kernel.NewMoney(250)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(fee) // Output: 2.50
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from integer cents.
// Negative amounts are rejected; the domain has no concept of negative fees
// or minimums.
func NewMoney(cents int64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setCents(cents); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Validate checks that the Money value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Covers reports whether the amount is greater than or equal to other.
// The comparison is inclusive: an order subtotal exactly at a zone minimum
// covers it.
func (m Money) Covers(other Money) bool {
	return m.cents >= other.cents
}

// Shortfall returns how much is missing for the amount to cover other,
// or zero Money when nothing is missing.
func (m Money) Shortfall(other Money) Money {
	if m.cents >= other.cents {
		return Money{cents: 0, guard: guard.NewConstructorGuard()}
	}
	return Money{cents: other.cents - m.cents, guard: guard.NewConstructorGuard()}
}

// String renders the amount in major units with two decimals, e.g. "30.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m *Money) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cents is invalid", fmt.Errorf("%d is negative", cents))
	}
	m.cents = cents
	return nil
}
