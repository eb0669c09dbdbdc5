package domain

import "strings"

// View selects the granularity of rendered rows and chart points
type View string

const (
	ViewMonthly View = "monthly"
	ViewYearly  View = "yearly"
)

// ParseView returns ViewYearly unless s names the monthly view
func ParseView(s string) View {
	if strings.EqualFold(strings.TrimSpace(s), string(ViewMonthly)) {
		return ViewMonthly
	}
	return ViewYearly
}

// IsMonthly reports whether periods are month indices
func (v View) IsMonthly() bool { return v == ViewMonthly }

// Toggle returns the other view
func (v View) Toggle() View {
	if v.IsMonthly() {
		return ViewYearly
	}
	return ViewMonthly
}

// DisplayMode selects nominal or inflation-adjusted amounts
type DisplayMode string

const (
	DisplayNominal DisplayMode = "nominal"
	DisplayReal    DisplayMode = "real"
)

// ParseDisplayMode returns DisplayNominal unless s names the real mode
func ParseDisplayMode(s string) DisplayMode {
	if strings.EqualFold(strings.TrimSpace(s), string(DisplayReal)) {
		return DisplayReal
	}
	return DisplayNominal
}

// IsReal reports whether amounts are shown in today's purchasing power
func (d DisplayMode) IsReal() bool { return d == DisplayReal }

// Toggle returns the other display mode
func (d DisplayMode) Toggle() DisplayMode {
	if d.IsReal() {
		return DisplayNominal
	}
	return DisplayReal
}
