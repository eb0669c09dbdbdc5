package domain

import "strings"

// CompoundingMode selects the schedule on which interest is credited
type CompoundingMode int

const (
	CompoundingMonthly CompoundingMode = iota
	CompoundingYearly
	CompoundingQuarterly
	CompoundingSemiAnnual
	CompoundingDaily
)

var compoundingNames = map[CompoundingMode]string{
	CompoundingMonthly:    "monthly",
	CompoundingYearly:     "yearly",
	CompoundingQuarterly:  "quarterly",
	CompoundingSemiAnnual: "semiannually",
	CompoundingDaily:      "daily",
}

// CompoundingModes returns every supported mode in display order
func CompoundingModes() []CompoundingMode {
	return []CompoundingMode{
		CompoundingMonthly,
		CompoundingYearly,
		CompoundingQuarterly,
		CompoundingSemiAnnual,
		CompoundingDaily,
	}
}

// ParseCompoundingMode resolves an identifier such as "quarterly".
// Unrecognized identifiers resolve to CompoundingMonthly.
func ParseCompoundingMode(s string) CompoundingMode {
	id := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range compoundingNames {
		if name == id {
			return mode
		}
	}
	return CompoundingMonthly
}

// String returns the identifier used in input files and the HTTP API
func (m CompoundingMode) String() string {
	if name, ok := compoundingNames[m]; ok {
		return name
	}
	return compoundingNames[CompoundingMonthly]
}

// Label returns a human readable name
func (m CompoundingMode) Label() string {
	switch m {
	case CompoundingYearly:
		return "Yearly"
	case CompoundingQuarterly:
		return "Quarterly"
	case CompoundingSemiAnnual:
		return "Semi-Annually"
	case CompoundingDaily:
		return "Daily"
	default:
		return "Monthly"
	}
}

// MarshalText implements encoding.TextMarshaler
func (m CompoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (m *CompoundingMode) UnmarshalText(text []byte) error {
	*m = ParseCompoundingMode(string(text))
	return nil
}
