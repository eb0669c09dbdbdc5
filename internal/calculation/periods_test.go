package calculation

import (
	"fmt"
	"math"
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimalEqual(t *testing.T, want, got decimal.Decimal, context ...interface{}) {
	t.Helper()
	assert.True(t, want.Equal(got), "expected %s, got %s %s", want.String(), got.String(), fmt.Sprint(context...))
}

// TestCalculateMonthlySingleMonth covers interest on the start balance at rate/12
func TestCalculateMonthlySingleMonth(t *testing.T) {
	ledger := CalculateMonthly(dec("1000"), dec("0.12"), decimal.Zero, 1)
	require.Len(t, ledger, 1)

	r := ledger[0]
	assert.Equal(t, 1, r.Period)
	assertDecimalEqual(t, dec("1000"), r.StartBalance)
	assertDecimalEqual(t, dec("10"), r.Interest)
	assertDecimalEqual(t, dec("1010"), r.EndBalance)
}

func TestCalculateMonthlyInterestBeforeDeposit(t *testing.T) {
	ledger := CalculateMonthly(dec("1000"), dec("0.12"), dec("100"), 2)
	require.Len(t, ledger, 2)

	// month 1: 1000 * 1% = 10, deposit does not earn in its own month
	assertDecimalEqual(t, dec("10"), ledger[0].Interest)
	assertDecimalEqual(t, dec("1110"), ledger[0].EndBalance)
	// month 2: 1110 * 1% = 11.1
	assertDecimalEqual(t, dec("11.1"), ledger[1].Interest)
	assertDecimalEqual(t, dec("1221.1"), ledger[1].EndBalance)
}

// TestCalculateYearlyCreditsOnlyAtYearEnd covers the once-a-year credit
func TestCalculateYearlyCreditsOnlyAtYearEnd(t *testing.T) {
	ledger := CalculateYearly(dec("1000"), dec("0.10"), decimal.Zero, 12)
	require.Len(t, ledger, 12)

	for _, r := range ledger[:11] {
		assert.True(t, r.Interest.IsZero(), "month %d should carry no interest", r.Period)
		assertDecimalEqual(t, dec("1000"), r.EndBalance, fmt.Sprintf("month %d", r.Period))
	}
	assertDecimalEqual(t, dec("100"), ledger[11].Interest)
	assertDecimalEqual(t, dec("1100"), ledger[11].EndBalance)
}

func TestCalculateYearlyDepositBeforeInterest(t *testing.T) {
	ledger := CalculateYearly(decimal.Zero, dec("0.10"), dec("100"), 12)
	require.Len(t, ledger, 12)

	// 12 deposits of 100, then 10% on 1200
	assertDecimalEqual(t, dec("120"), ledger[11].Interest)
	assertDecimalEqual(t, dec("1320"), ledger[11].EndBalance)
}

// TestCalculatePeriodicQuarterly covers the first quarter-end credit
func TestCalculatePeriodicQuarterly(t *testing.T) {
	ledger := CalculatePeriodic(decimal.Zero, dec("0.08"), dec("100"), 3, 4)
	require.Len(t, ledger, 3)

	assert.True(t, ledger[0].Interest.IsZero())
	assert.True(t, ledger[1].Interest.IsZero())
	assertDecimalEqual(t, dec("200"), ledger[2].StartBalance)
	assertDecimalEqual(t, dec("6"), ledger[2].Interest)
	assertDecimalEqual(t, dec("306"), ledger[2].EndBalance)
}

func TestCalculatePeriodicSemiAnnual(t *testing.T) {
	ledger := CalculatePeriodic(dec("1200"), dec("0.06"), decimal.Zero, 12, 2)
	require.Len(t, ledger, 12)

	for _, r := range ledger {
		if r.Period == 6 || r.Period == 12 {
			continue
		}
		assert.True(t, r.Interest.IsZero(), fmt.Sprintf("month %d", r.Period))
	}
	assertDecimalEqual(t, dec("36"), ledger[5].Interest)
	assertDecimalEqual(t, dec("1236"), ledger[5].EndBalance)
	assertDecimalEqual(t, dec("37.08"), ledger[11].Interest)
	assertDecimalEqual(t, dec("1273.08"), ledger[11].EndBalance)
}

func TestCalculatePeriodicTrailingPartialPeriodIsNotCredited(t *testing.T) {
	ledger := CalculatePeriodic(dec("1000"), dec("0.04"), decimal.Zero, 5, 4)
	require.Len(t, ledger, 5)

	assertDecimalEqual(t, dec("10"), ledger[2].Interest)
	assert.True(t, ledger[3].Interest.IsZero())
	assert.True(t, ledger[4].Interest.IsZero())
	assertDecimalEqual(t, dec("1010"), ledger[4].EndBalance)
}

func TestCalculatePeriodicGuardsDegeneratePeriods(t *testing.T) {
	// more than 24 periods per year rounds to zero months; treated as monthly credits
	ledger := CalculatePeriodic(dec("1000"), dec("0.36"), decimal.Zero, 2, 36)
	require.Len(t, ledger, 2)
	assertDecimalEqual(t, dec("10"), ledger[0].Interest)

	ledger = CalculatePeriodic(dec("1000"), dec("0.10"), decimal.Zero, 12, 0)
	require.Len(t, ledger, 12)
	assertDecimalEqual(t, dec("100"), ledger[11].Interest)
}

func TestCalculateDailyEffective(t *testing.T) {
	ledger := CalculateDailyEffective(dec("1000"), dec("0.05"), decimal.Zero, 1)
	require.Len(t, ledger, 1)

	want := 1000 * math.Pow(1+0.05/365, 365.0/12)
	assert.InDelta(t, want, ledger[0].EndBalance.InexactFloat64(), 1e-6)
	assert.InDelta(t, want-1000, ledger[0].Interest.InexactFloat64(), 1e-6)
}

func TestCalculateDailyEffectiveDepositBeforeGrowth(t *testing.T) {
	ledger := CalculateDailyEffective(decimal.Zero, dec("0.05"), dec("100"), 1)
	require.Len(t, ledger, 1)

	factor := math.Pow(1+0.05/365, 365.0/12)
	assert.InDelta(t, 100*factor, ledger[0].EndBalance.InexactFloat64(), 1e-6)
	assert.True(t, ledger[0].Interest.IsPositive())
}

func TestCalculateDailyEffectiveZeroRate(t *testing.T) {
	ledger := CalculateDailyEffective(dec("500"), decimal.Zero, dec("25"), 3)
	require.Len(t, ledger, 3)

	for _, r := range ledger {
		assert.True(t, r.Interest.IsZero(), fmt.Sprintf("month %d", r.Period))
	}
	assertDecimalEqual(t, dec("575"), ledger[2].EndBalance)
}

func TestCalculatorsReturnEmptyLedgerForZeroMonths(t *testing.T) {
	for _, mode := range domain.CompoundingModes() {
		assert.Empty(t, Compute(mode, dec("1000"), dec("0.05"), dec("10"), 0), mode.String())
	}
}

// TestLedgerInvariants checks the balance identity and month-to-month chaining for every model
func TestLedgerInvariants(t *testing.T) {
	principal := dec("2500")
	contribution := dec("150")
	rate := dec("0.065")
	months := 37

	for _, mode := range domain.CompoundingModes() {
		t.Run(mode.String(), func(t *testing.T) {
			ledger := Compute(mode, principal, rate, contribution, months)
			require.Len(t, ledger, months)
			assertDecimalEqual(t, principal, ledger[0].StartBalance)

			for i, r := range ledger {
				assert.Equal(t, i+1, r.Period)
				assertDecimalEqual(t, contribution, r.Deposit)
				assertDecimalEqual(t, r.StartBalance.Add(r.Deposit).Add(r.Interest), r.EndBalance, fmt.Sprintf("month %d", r.Period))
				if i+1 < len(ledger) {
					assertDecimalEqual(t, r.EndBalance, ledger[i+1].StartBalance, fmt.Sprintf("chain at month %d", r.Period))
				}
			}
		})
	}
}
