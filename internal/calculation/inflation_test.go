package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRealValueAtPeriodZeroIsNominal(t *testing.T) {
	x := dec("1234.56")
	assertDecimalEqual(t, x, RealValue(x, 0, true))
	assertDecimalEqual(t, x, RealValue(x, 0, false))
}

func TestRealValueWholeYears(t *testing.T) {
	assertDecimalEqual(t, dec("1000"), RealValue(dec("1030"), 1, false))
	assertDecimalEqual(t, dec("1000"), RealValue(dec("1030"), 12, true))
	assertDecimalEqual(t, dec("1000"), RealValue(dec("1060.9"), 2, false))
}

func TestRealValuePartialYear(t *testing.T) {
	got := RealValue(dec("1000"), 6, true).InexactFloat64()
	assert.InDelta(t, 1000/math.Sqrt(1.03), got, 1e-9)
}

func TestRealValueLongHorizon(t *testing.T) {
	got := RealValue(dec("100000"), 30, false).InexactFloat64()
	assert.InDelta(t, 100000/math.Pow(1.03, 30), got, 1e-6)
}

func TestRealRecords(t *testing.T) {
	year := RealYearRecord(domain.YearRecord{
		Period:        1,
		StartBalance:  dec("1030"),
		Contributions: dec("103"),
		Interest:      dec("10.3"),
		EndBalance:    dec("1143.3"),
	})
	assert.Equal(t, 1, year.Period)
	assertDecimalEqual(t, dec("1000"), year.StartBalance)
	assertDecimalEqual(t, dec("100"), year.Contributions)
	assertDecimalEqual(t, dec("10"), year.Interest)
	assertDecimalEqual(t, dec("1110"), year.EndBalance)

	month := RealPeriodRecord(domain.PeriodRecord{
		Period:       12,
		StartBalance: dec("1030"),
		Deposit:      dec("0"),
		Interest:     dec("0"),
		EndBalance:   dec("1030"),
	})
	assertDecimalEqual(t, dec("1000"), month.EndBalance)
	assert.True(t, month.Deposit.IsZero())
}
