package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	pkgdec "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// InflationRate is the fixed annual inflation assumption used for real-dollar display
var InflationRate = decimal.NewFromFloat(0.03)

// RealValue converts a nominal amount at periodIndex into today's purchasing power.
// periodIndex is a month number when isMonthlyPeriod is set, otherwise a year number.
func RealValue(nominal decimal.Decimal, periodIndex int, isMonthlyPeriod bool) decimal.Decimal {
	years := decimal.NewFromInt(int64(periodIndex))
	if isMonthlyPeriod {
		years = years.Div(monthsPerYear)
	}
	if years.IsZero() {
		return nominal
	}
	return nominal.Div(pkgdec.Pow(decimal.NewFromInt(1).Add(InflationRate), years))
}

// RealPeriodRecord returns a copy of r with every amount inflation-adjusted to its month
func RealPeriodRecord(r domain.PeriodRecord) domain.PeriodRecord {
	return domain.PeriodRecord{
		Period:       r.Period,
		StartBalance: RealValue(r.StartBalance, r.Period, true),
		Deposit:      RealValue(r.Deposit, r.Period, true),
		Interest:     RealValue(r.Interest, r.Period, true),
		EndBalance:   RealValue(r.EndBalance, r.Period, true),
	}
}

// RealYearRecord returns a copy of r with every amount inflation-adjusted to its year
func RealYearRecord(r domain.YearRecord) domain.YearRecord {
	return domain.YearRecord{
		Period:        r.Period,
		StartBalance:  RealValue(r.StartBalance, r.Period, false),
		Contributions: RealValue(r.Contributions, r.Period, false),
		Interest:      RealValue(r.Interest, r.Period, false),
		EndBalance:    RealValue(r.EndBalance, r.Period, false),
	}
}
