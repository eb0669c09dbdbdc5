package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodRecord represents a single elapsed month of a projection
type PeriodRecord struct {
	Period       int             `yaml:"period" json:"period"`
	StartBalance decimal.Decimal `yaml:"start_balance" json:"start_balance"`
	Deposit      decimal.Decimal `yaml:"deposit" json:"deposit"`
	Interest     decimal.Decimal `yaml:"interest" json:"interest"` // zero when no credit is scheduled this month
	EndBalance   decimal.Decimal `yaml:"end_balance" json:"end_balance"`
}

// YearRecord summarizes one completed 12-month block of a projection
type YearRecord struct {
	Period        int             `yaml:"period" json:"period"`
	StartBalance  decimal.Decimal `yaml:"start_balance" json:"start_balance"`
	Contributions decimal.Decimal `yaml:"contributions" json:"contributions"`
	Interest      decimal.Decimal `yaml:"interest" json:"interest"`
	EndBalance    decimal.Decimal `yaml:"end_balance" json:"end_balance"`
}

// ProjectionInputs holds the validated assumptions for a projection request.
// Rates are decimals (0.05 for 5%).
type ProjectionInputs struct {
	Principal           decimal.Decimal `yaml:"principal" json:"principal"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	Years               int             `yaml:"years" json:"years"`
	Compounding         CompoundingMode `yaml:"compounding" json:"compounding"`
	RateRange           decimal.Decimal `yaml:"rate_range,omitempty" json:"rate_range,omitempty"`
}

// Months returns the projection horizon in months
func (pi ProjectionInputs) Months() int {
	return pi.Years * 12
}

// HasRange reports whether lower and upper bound series should be projected
func (pi ProjectionInputs) HasRange() bool {
	return pi.RateRange.GreaterThan(decimal.Zero)
}

// MinRate returns the lower bound of the rate band, never below zero
func (pi ProjectionInputs) MinRate() decimal.Decimal {
	return decimal.Max(decimal.Zero, pi.AnnualRate.Sub(pi.RateRange))
}

// MaxRate returns the upper bound of the rate band
func (pi ProjectionInputs) MaxRate() decimal.Decimal {
	return pi.AnnualRate.Add(pi.RateRange)
}

// Validate checks the preconditions the engine relies on
func (pi ProjectionInputs) Validate() error {
	if pi.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", pi.Years)
	}
	if pi.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if pi.RateRange.LessThan(decimal.Zero) {
		return fmt.Errorf("rate range cannot be negative")
	}
	return nil
}

// Series is the monthly ledger for a single rate and its yearly summary
type Series struct {
	Rate    decimal.Decimal `json:"rate"`
	Monthly []PeriodRecord  `json:"monthly"`
	Yearly  []YearRecord    `json:"yearly"`
}

// IsEmpty reports whether the series was not projected
func (s Series) IsEmpty() bool {
	return len(s.Monthly) == 0
}

// FinalBalance returns the end balance of the last completed year
func (s Series) FinalBalance() decimal.Decimal {
	if len(s.Yearly) == 0 {
		return decimal.Zero
	}
	return s.Yearly[len(s.Yearly)-1].EndBalance
}

// ProjectionResult holds the base, lower and upper bound series for one request.
// It is never mutated after the engine returns it.
type ProjectionResult struct {
	Inputs      ProjectionInputs `json:"inputs"`
	GeneratedAt time.Time        `json:"generated_at"`
	MinRate     decimal.Decimal  `json:"min_rate"`
	MaxRate     decimal.Decimal  `json:"max_rate"`
	Base        Series           `json:"base"`
	Lower       Series           `json:"lower"`
	Upper       Series           `json:"upper"`
}

// HasRange reports whether the lower and upper bound series were projected
func (pr *ProjectionResult) HasRange() bool {
	return pr.Inputs.HasRange() && !pr.Lower.IsEmpty() && !pr.Upper.IsEmpty()
}

// FinalBalance returns the nominal ending balance of the base series
func (pr *ProjectionResult) FinalBalance() decimal.Decimal {
	return pr.Base.FinalBalance()
}
