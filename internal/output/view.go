package output

import (
	"fmt"
	"time"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
	pkgdec "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Chart colours for the base, lower and upper series.
const (
	ColorBase  = "#3b82f6"
	ColorLower = "#22c55e"
	ColorUpper = "#f59e0b"
)

// TableHeaders are the column headings shared by every tabular formatter.
var TableHeaders = []string{"Period", "Starting Balance ($)", "Contributions ($)", "Interest ($)", "Ending Balance ($)"}

// ViewRow is one rendered table row. Amounts are rounded to cents.
type ViewRow struct {
	Label         string          `json:"label"`
	Period        int             `json:"period"`
	StartBalance  decimal.Decimal `json:"start_balance"`
	Contributions decimal.Decimal `json:"contributions"`
	Interest      decimal.Decimal `json:"interest"`
	EndBalance    decimal.Decimal `json:"end_balance"`
}

// Cells returns the row as formatted table cells in TableHeaders order.
func (r ViewRow) Cells() []string {
	return []string{
		r.Label,
		FormatAmount(r.StartBalance),
		FormatAmount(r.Contributions),
		FormatAmount(r.Interest),
		FormatAmount(r.EndBalance),
	}
}

// ChartSeries is one line of the balance chart.
type ChartSeries struct {
	Name   string            `json:"name"`
	Color  string            `json:"color"`
	Points []decimal.Decimal `json:"points"`
}

// Floats returns the points as float64 for plotting.
func (cs ChartSeries) Floats() []float64 {
	out := make([]float64, len(cs.Points))
	for i, p := range cs.Points {
		out[i] = p.InexactFloat64()
	}
	return out
}

// LastGrouped returns the final point as whole dollars with separators, e.g. "$98,765".
func (cs ChartSeries) LastGrouped() string {
	if len(cs.Points) == 0 {
		return ""
	}
	return pkgdec.NewMoneyFromDecimal(cs.Points[len(cs.Points)-1]).FormatGrouped()
}

// Summary holds the headline numbers of a rendered projection.
type Summary struct {
	FinalBalance decimal.Decimal `json:"final_balance"`
	FinalText    string          `json:"final_text"`
	ModeLabel    string          `json:"mode_label"`
	Compounding  string          `json:"compounding"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	MinRate      decimal.Decimal `json:"min_rate"`
	MaxRate      decimal.Decimal `json:"max_rate"`
	LowerFinal   decimal.Decimal `json:"lower_final"`
	UpperFinal   decimal.Decimal `json:"upper_final"`
	RangeText    string          `json:"range_text,omitempty"`
}

// ProjectionView is a projection result rendered for one view and display mode.
type ProjectionView struct {
	View        domain.View        `json:"view"`
	Display     domain.DisplayMode `json:"display"`
	Years       int                `json:"years"`
	GeneratedAt time.Time          `json:"generated_at"`
	Summary     Summary            `json:"summary"`
	Labels      []string           `json:"labels"`
	Series      []ChartSeries      `json:"series"`
	Rows        []ViewRow          `json:"rows"`
}

// HasRange reports whether lower and upper series are present.
func (pv *ProjectionView) HasRange() bool {
	return len(pv.Series) == 3
}

// ModeLabel returns the summary label for a display mode.
func ModeLabel(display domain.DisplayMode) string {
	if display.IsReal() {
		return "(Inflation-adjusted, 3%)"
	}
	return "(Nominal)"
}

// PeriodLabel returns "Month N" or "Year N".
func PeriodLabel(view domain.View, period int) string {
	if view.IsMonthly() {
		return fmt.Sprintf("Month %d", period)
	}
	return fmt.Sprintf("Year %d", period)
}

// BuildView renders result for the given view and display mode. The result is
// only read; toggling view or display rebuilds from the same result.
func BuildView(result *domain.ProjectionResult, view domain.View, display domain.DisplayMode) *ProjectionView {
	pv := &ProjectionView{
		View:        view,
		Display:     display,
		Years:       result.Inputs.Years,
		GeneratedAt: result.GeneratedAt,
	}

	pv.Rows = buildRows(result.Base, view, display)
	pv.Labels = make([]string, len(pv.Rows))
	for i, r := range pv.Rows {
		pv.Labels[i] = r.Label
	}

	baseName := "Balance"
	if display.IsReal() {
		baseName = "Balance (Real)"
	}
	pv.Series = append(pv.Series, ChartSeries{
		Name:   baseName,
		Color:  ColorBase,
		Points: seriesPoints(result.Base, view, display),
	})
	if result.HasRange() {
		pv.Series = append(pv.Series,
			ChartSeries{
				Name:   fmt.Sprintf("Lower (%s)", FormatRate(result.MinRate)),
				Color:  ColorLower,
				Points: seriesPoints(result.Lower, view, display),
			},
			ChartSeries{
				Name:   fmt.Sprintf("Higher (%s)", FormatRate(result.MaxRate)),
				Color:  ColorUpper,
				Points: seriesPoints(result.Upper, view, display),
			},
		)
	}

	pv.Summary = buildSummary(result, display)
	return pv
}

func buildSummary(result *domain.ProjectionResult, display domain.DisplayMode) Summary {
	years := result.Inputs.Years
	final := displayFinal(result.Base, years, display)

	s := Summary{
		FinalBalance: final,
		FinalText:    FormatCurrency(final),
		ModeLabel:    ModeLabel(display),
		Compounding:  result.Inputs.Compounding.Label(),
		BaseRate:     result.Inputs.AnnualRate,
	}
	if !result.HasRange() {
		return s
	}

	s.MinRate = result.MinRate
	s.MaxRate = result.MaxRate
	s.LowerFinal = displayFinal(result.Lower, years, display)
	s.UpperFinal = displayFinal(result.Upper, years, display)
	s.RangeText = fmt.Sprintf("Range: %s → %s • %s → %s • %s → %s",
		FormatRate(s.MinRate), FormatCurrency(s.LowerFinal),
		FormatRate(s.BaseRate), FormatCurrency(final),
		FormatRate(s.MaxRate), FormatCurrency(s.UpperFinal))
	return s
}

// displayFinal deflates by the full horizon in years, not by the last record's index.
func displayFinal(s domain.Series, years int, display domain.DisplayMode) decimal.Decimal {
	final := s.FinalBalance()
	if display.IsReal() {
		final = calculation.RealValue(final, years, false)
	}
	return final.Round(2)
}

func buildRows(s domain.Series, view domain.View, display domain.DisplayMode) []ViewRow {
	if view.IsMonthly() {
		rows := make([]ViewRow, 0, len(s.Monthly))
		for _, r := range s.Monthly {
			if display.IsReal() {
				r = calculation.RealPeriodRecord(r)
			}
			rows = append(rows, ViewRow{
				Label:         PeriodLabel(view, r.Period),
				Period:        r.Period,
				StartBalance:  r.StartBalance.Round(2),
				Contributions: r.Deposit.Round(2),
				Interest:      r.Interest.Round(2),
				EndBalance:    r.EndBalance.Round(2),
			})
		}
		return rows
	}

	rows := make([]ViewRow, 0, len(s.Yearly))
	for _, r := range s.Yearly {
		if display.IsReal() {
			r = calculation.RealYearRecord(r)
		}
		rows = append(rows, ViewRow{
			Label:         PeriodLabel(view, r.Period),
			Period:        r.Period,
			StartBalance:  r.StartBalance.Round(2),
			Contributions: r.Contributions.Round(2),
			Interest:      r.Interest.Round(2),
			EndBalance:    r.EndBalance.Round(2),
		})
	}
	return rows
}

func seriesPoints(s domain.Series, view domain.View, display domain.DisplayMode) []decimal.Decimal {
	monthly := view.IsMonthly()
	var points []decimal.Decimal
	add := func(period int, end decimal.Decimal) {
		if display.IsReal() {
			end = calculation.RealValue(end, period, monthly)
		}
		points = append(points, end.Round(2))
	}
	if monthly {
		for _, r := range s.Monthly {
			add(r.Period, r.EndBalance)
		}
	} else {
		for _, r := range s.Yearly {
			add(r.Period, r.EndBalance)
		}
	}
	return points
}
