package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a dollar sign
func (m Money) Format() string {
	if m.Decimal.IsNegative() {
		return "-$" + m.Decimal.Abs().StringFixed(2)
	}
	return "$" + m.String()
}

// FormatGrouped formats whole dollars with thousands separators, e.g. $1,234,568
func (m Money) FormatGrouped() string {
	whole := m.Decimal.Round(0).Abs().String()
	var b strings.Builder
	if m.Decimal.Round(0).IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Pow raises base to exp. Integral exponents are evaluated in decimal;
// fractional ones go through math.Pow since decimal.Pow truncates the exponent.
func Pow(base, exp decimal.Decimal) decimal.Decimal {
	if exp.Equal(exp.Truncate(0)) {
		return base.Pow(exp)
	}
	return decimal.NewFromFloat(math.Pow(base.InexactFloat64(), exp.InexactFloat64()))
}
