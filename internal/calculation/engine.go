package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine orchestrates a projection request: it runs the dispatcher for
// the base rate and, when a rate band is requested, for its lower and upper bounds.
// It holds no state between calls.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// Project computes the base series and, if inputs carry a rate range, the lower and
// upper bound series. The only error returned is for inputs failing validation or
// a cancelled context.
func (pe *ProjectionEngine) Project(ctx context.Context, inputs domain.ProjectionInputs) (*domain.ProjectionResult, error) {
	logger := loggerOrNop(pe.Logger)

	if err := inputs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection inputs: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("projection cancelled: %w", err)
	}

	result := &domain.ProjectionResult{
		Inputs:      inputs,
		GeneratedAt: nowFunc(),
		MinRate:     inputs.MinRate(),
		MaxRate:     inputs.MaxRate(),
	}

	months := inputs.Months()
	logger.Debugf("projecting %d months, compounding=%s rate=%s range=%s",
		months, inputs.Compounding, inputs.AnnualRate.String(), inputs.RateRange.String())

	result.Base = pe.projectSeries(inputs, inputs.AnnualRate)

	if inputs.HasRange() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("projection cancelled: %w", err)
		}
		result.Lower = pe.projectSeries(inputs, result.MinRate)
		result.Upper = pe.projectSeries(inputs, result.MaxRate)
		logger.Debugf("rate band %s..%s final balances %s..%s",
			result.MinRate.String(), result.MaxRate.String(),
			result.Lower.FinalBalance().StringFixed(2), result.Upper.FinalBalance().StringFixed(2))
	}

	logger.Infof("projection complete: %d years, final balance $%s", inputs.Years, result.FinalBalance().StringFixed(2))
	return result, nil
}

func (pe *ProjectionEngine) projectSeries(inputs domain.ProjectionInputs, rate decimal.Decimal) domain.Series {
	monthly := Compute(inputs.Compounding, inputs.Principal, rate, inputs.MonthlyContribution, inputs.Months())
	return domain.Series{
		Rate:    rate,
		Monthly: monthly,
		Yearly:  GroupByYear(monthly),
	}
}
