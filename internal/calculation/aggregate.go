package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// GroupByYear reduces a monthly ledger into one record per completed 12-month block.
// Trailing months that do not complete a year are dropped.
func GroupByYear(monthly []domain.PeriodRecord) []domain.YearRecord {
	years := len(monthly) / 12
	out := make([]domain.YearRecord, 0, years)

	for y := 1; y <= years; y++ {
		block := monthly[(y-1)*12 : y*12]
		contributions := decimal.Zero
		interest := decimal.Zero
		for _, r := range block {
			contributions = contributions.Add(r.Deposit)
			interest = interest.Add(r.Interest)
		}
		out = append(out, domain.YearRecord{
			Period:        y,
			StartBalance:  block[0].StartBalance,
			Contributions: contributions,
			Interest:      interest,
			EndBalance:    block[len(block)-1].EndBalance,
		})
	}
	return out
}
