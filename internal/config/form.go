package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormValues holds raw text fields as typed by a user. Rates are percentages.
type FormValues struct {
	Principal           string
	MonthlyContribution string
	RatePercent         string
	RangePercent        string // optional
	Years               string
	Compounding         string // optional, defaults to monthly
}

// ParseForm converts raw form fields into projection inputs. Non-numeric fields
// and a non-positive duration are rejected with ErrInvalidInput; a negative range
// is clamped to zero.
func ParseForm(fv FormValues) (domain.ProjectionInputs, error) {
	principal, err := parseNumber("principal", fv.Principal)
	if err != nil {
		return domain.ProjectionInputs{}, err
	}
	contribution, err := parseNumber("monthly contribution", fv.MonthlyContribution)
	if err != nil {
		return domain.ProjectionInputs{}, err
	}
	ratePct, err := parseNumber("interest rate", fv.RatePercent)
	if err != nil {
		return domain.ProjectionInputs{}, err
	}
	years, err := strconv.Atoi(strings.TrimSpace(fv.Years))
	if err != nil || years <= 0 {
		return domain.ProjectionInputs{}, fmt.Errorf("%w: duration must be a positive whole number of years", ErrInvalidInput)
	}

	rangePct := decimal.Zero
	if strings.TrimSpace(fv.RangePercent) != "" {
		rangePct, err = parseNumber("interest range", fv.RangePercent)
		if err != nil {
			return domain.ProjectionInputs{}, err
		}
	}

	inputs := domain.ProjectionInputs{
		Principal:           principal,
		MonthlyContribution: contribution,
		AnnualRate:          ratePct.Div(hundred),
		Years:               years,
		Compounding:         domain.ParseCompoundingMode(fv.Compounding),
		RateRange:           decimal.Max(decimal.Zero, rangePct.Div(hundred)),
	}
	if err := NewInputParser().ValidateInputs(&inputs); err != nil {
		return domain.ProjectionInputs{}, err
	}
	return inputs, nil
}

// FormValuesFromInputs renders inputs back into form fields, e.g. as form defaults
func FormValuesFromInputs(in domain.ProjectionInputs) FormValues {
	return FormValues{
		Principal:           in.Principal.String(),
		MonthlyContribution: in.MonthlyContribution.String(),
		RatePercent:         in.AnnualRate.Mul(hundred).String(),
		RangePercent:        in.RateRange.Mul(hundred).String(),
		Years:               strconv.Itoa(in.Years),
		Compounding:         in.Compounding.String(),
	}
}

func parseNumber(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, field)
	}
	return d, nil
}
