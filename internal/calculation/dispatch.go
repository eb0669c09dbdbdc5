package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculator produces a monthly ledger of the given length for one compounding model
type Calculator func(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord

var calculators = map[domain.CompoundingMode]Calculator{
	domain.CompoundingMonthly: CalculateMonthly,
	domain.CompoundingYearly:  CalculateYearly,
	domain.CompoundingQuarterly: func(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
		return CalculatePeriodic(principal, rate, monthlyContribution, months, 4)
	},
	domain.CompoundingSemiAnnual: func(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
		return CalculatePeriodic(principal, rate, monthlyContribution, months, 2)
	},
	domain.CompoundingDaily: CalculateDailyEffective,
}

// CalculatorFor returns the calculator for mode, falling back to the monthly model
func CalculatorFor(mode domain.CompoundingMode) Calculator {
	if c, ok := calculators[mode]; ok {
		return c
	}
	return CalculateMonthly
}

// Compute runs the calculator selected by mode
func Compute(mode domain.CompoundingMode, principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
	return CalculatorFor(mode)(principal, rate, monthlyContribution, months)
}

// ComputeByName runs the calculator for a compounding identifier such as "semiannually".
// Unknown identifiers use the monthly model.
func ComputeByName(id string, principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
	return Compute(domain.ParseCompoundingMode(id), principal, rate, monthlyContribution, months)
}
