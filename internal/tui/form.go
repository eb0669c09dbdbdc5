package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrFormAborted is returned when the user cancels the input form.
var ErrFormAborted = errors.New("input form aborted")

// NewInputForm builds the projection input form bound to fv.
func NewInputForm(fv *config.FormValues) *huh.Form {
	modes := domain.CompoundingModes()
	options := make([]huh.Option[string], len(modes))
	for i, m := range modes {
		options[i] = huh.NewOption(m.Label(), m.String())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial principal ($)").
				Value(&fv.Principal).
				Validate(validateNumber),
			huh.NewInput().
				Title("Monthly contribution ($)").
				Value(&fv.MonthlyContribution).
				Validate(validateNumber),
			huh.NewInput().
				Title("Annual interest rate (%)").
				Value(&fv.RatePercent).
				Validate(validateNumber),
			huh.NewInput().
				Title("Interest range ± (%)").
				Description("Optional. Projects lower and higher rate scenarios.").
				Value(&fv.RangePercent).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("Duration (years)").
				Value(&fv.Years).
				Validate(validateYears),
			huh.NewSelect[string]().
				Title("Compounding").
				Options(options...).
				Value(&fv.Compounding),
		),
	)
}

// RunForm asks for projection inputs, pre-filled from defaults.
func RunForm(defaults domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	fv := config.FormValuesFromInputs(defaults)
	if err := NewInputForm(&fv).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.ProjectionInputs{}, ErrFormAborted
		}
		return domain.ProjectionInputs{}, fmt.Errorf("running input form: %w", err)
	}
	return config.ParseForm(fv)
}

func validateNumber(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateNumber(s)
}

func validateYears(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a whole number of years greater than zero")
	}
	return nil
}
