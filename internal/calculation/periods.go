package calculation

import (
	"math"

	"github.com/rpgo/savings-projector/internal/domain"
	pkgdec "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BalancePrecision is the number of decimal places interest credits are rounded to
// before they are added to a balance. Keeps end == start + deposit + interest exact.
const BalancePrecision int32 = 10

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// CalculateMonthly credits interest every month on the start-of-month balance at
// rate/12, then adds the deposit.
func CalculateMonthly(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
	out := make([]domain.PeriodRecord, 0, max(months, 0))
	monthlyRate := rate.Div(monthsPerYear)
	balance := principal

	for m := 1; m <= months; m++ {
		start := balance
		interest := start.Mul(monthlyRate).Round(BalancePrecision)
		balance = start.Add(interest).Add(monthlyContribution)
		out = append(out, domain.PeriodRecord{
			Period:       m,
			StartBalance: start,
			Deposit:      monthlyContribution,
			Interest:     interest,
			EndBalance:   balance,
		})
	}
	return out
}

// CalculateYearly adds deposits monthly and credits a full year of interest on the
// post-deposit balance every twelfth month.
func CalculateYearly(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
	return CalculatePeriodic(principal, rate, monthlyContribution, months, 1)
}

// CalculatePeriodic adds deposits monthly and credits rate/periodsPerYear on the
// post-deposit balance at the end of each compounding period. Months after the
// last completed period carry zero interest.
func CalculatePeriodic(principal, rate, monthlyContribution decimal.Decimal, months, periodsPerYear int) []domain.PeriodRecord {
	out := make([]domain.PeriodRecord, 0, max(months, 0))
	if periodsPerYear < 1 {
		periodsPerYear = 1
	}
	monthsPerPeriod := int(math.Round(12 / float64(periodsPerYear)))
	if monthsPerPeriod < 1 {
		monthsPerPeriod = 1
	}
	periodRate := rate.Div(decimal.NewFromInt(int64(periodsPerYear)))
	balance := principal

	for m := 1; m <= months; m++ {
		start := balance
		balance = start.Add(monthlyContribution)
		interest := decimal.Zero
		if m%monthsPerPeriod == 0 {
			interest = balance.Mul(periodRate).Round(BalancePrecision)
			balance = balance.Add(interest)
		}
		out = append(out, domain.PeriodRecord{
			Period:       m,
			StartBalance: start,
			Deposit:      monthlyContribution,
			Interest:     interest,
			EndBalance:   balance,
		})
	}
	return out
}

// DailyEffectiveFactor returns the monthly growth factor (1 + rate/365)^(365/12)
func DailyEffectiveFactor(rate decimal.Decimal) decimal.Decimal {
	daily := decimal.NewFromInt(1).Add(rate.Div(daysPerYear))
	return pkgdec.Pow(daily, daysPerYear.Div(monthsPerYear))
}

// CalculateDailyEffective approximates daily compounding with a monthly factor.
// The deposit is added first, then the factor is applied; the reported interest
// is the growth implied by the factor.
func CalculateDailyEffective(principal, rate, monthlyContribution decimal.Decimal, months int) []domain.PeriodRecord {
	out := make([]domain.PeriodRecord, 0, max(months, 0))
	factor := DailyEffectiveFactor(rate)
	balance := principal

	for m := 1; m <= months; m++ {
		start := balance
		preInterest := start.Add(monthlyContribution)
		end := preInterest.Mul(factor).Round(BalancePrecision)
		balance = end
		out = append(out, domain.PeriodRecord{
			Period:       m,
			StartBalance: start,
			Deposit:      monthlyContribution,
			Interest:     end.Sub(preInterest),
			EndBalance:   end,
		})
	}
	return out
}
