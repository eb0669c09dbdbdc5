package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
	if got, want := FormatCurrency(decimal.RequireFromString("-12.5")), "-$12.50"; got != want {
		t.Errorf("FormatCurrency(-12.5) = %q, want %q", got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	if got, want := FormatAmount(decimal.NewFromInt(500)), "500.00"; got != want {
		t.Errorf("FormatAmount(500) = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatRate(t *testing.T) {
	cases := map[string]string{
		"0.05":   "5.00%",
		"0.0325": "3.25%",
		"0":      "0.00%",
	}
	for in, want := range cases {
		if got := FormatRate(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatRate(%s) = %q, want %q", in, got, want)
		}
	}
}
