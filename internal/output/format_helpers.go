package output

import (
	pkgdec "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD currency with 2 decimals, e.g. "$1234.57" or "-$12.50".
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdec.NewMoneyFromDecimal(amount).Format()
}

// FormatAmount formats a decimal with 2 decimals and no currency sign (table cells).
func FormatAmount(amount decimal.Decimal) string { return amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.05) as a percentage ("5.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(hundred)) }
