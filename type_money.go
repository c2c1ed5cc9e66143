package optifolio

import (
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. It is used by the
// report renderer to display investment amounts and allocations.
type Money struct {
	value *money.Money
}

// NewMoney creates a new Money instance from a decimal.Decimal.
func NewMoney(amount decimal.Decimal, currency string) Money {
	// Find the currency first.
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.IntPart(), currency)}
}

// NewMoneyFromFloat creates a new Money instance from a float amount.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// String returns the display representation of the money value.
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value == nil || m.value.IsZero() }

// Sub returns m minus n. Both operands must be defined amounts of the same
// currency.
func (m Money) Sub(n Money) Money {
	if m.value == nil || n.value == nil {
		log.Fatal("invalid money operation: undefined amount")
	}
	r, err := m.value.Subtract(n.value)
	if err != nil {
		log.Fatalf("invalid money operation: %v", err)
	}
	return Money{r}
}

// Equals reports whether two money values are the same amount and currency.
func (m Money) Equals(other Money) bool {
	eq, err := m.value.Equals(other.value)
	return err == nil && eq
}
