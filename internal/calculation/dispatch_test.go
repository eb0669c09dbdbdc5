package calculation

import (
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLedgersEqual(t *testing.T, want, got []domain.PeriodRecord) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Period, got[i].Period)
		assertDecimalEqual(t, want[i].EndBalance, got[i].EndBalance)
		assertDecimalEqual(t, want[i].Interest, got[i].Interest)
	}
}

func TestCalculatorForEachMode(t *testing.T) {
	p, r, c, n := dec("5000"), dec("0.06"), dec("200"), 24

	tests := []struct {
		mode domain.CompoundingMode
		want []domain.PeriodRecord
	}{
		{domain.CompoundingMonthly, CalculateMonthly(p, r, c, n)},
		{domain.CompoundingYearly, CalculateYearly(p, r, c, n)},
		{domain.CompoundingQuarterly, CalculatePeriodic(p, r, c, n, 4)},
		{domain.CompoundingSemiAnnual, CalculatePeriodic(p, r, c, n, 2)},
		{domain.CompoundingDaily, CalculateDailyEffective(p, r, c, n)},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assertLedgersEqual(t, tt.want, Compute(tt.mode, p, r, c, n))
			assertLedgersEqual(t, tt.want, ComputeByName(tt.mode.String(), p, r, c, n))
		})
	}
}

func TestUnknownModeFallsBackToMonthly(t *testing.T) {
	p, r, c, n := dec("1000"), dec("0.05"), dec("100"), 18
	monthly := CalculateMonthly(p, r, c, n)

	assertLedgersEqual(t, monthly, ComputeByName("weekly", p, r, c, n))
	assertLedgersEqual(t, monthly, ComputeByName("", p, r, c, n))
	assertLedgersEqual(t, monthly, Compute(domain.CompoundingMode(42), p, r, c, n))
}

func TestComputeByNameIsCaseInsensitive(t *testing.T) {
	p, r, c, n := dec("1000"), dec("0.08"), dec("0"), 6
	assertLedgersEqual(t, CalculatePeriodic(p, r, c, n, 2), ComputeByName(" SemiAnnually ", p, r, c, n))
}
