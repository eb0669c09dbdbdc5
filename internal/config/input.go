package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is returned when projection inputs are missing, non-numeric or out of range
var ErrInvalidInput = errors.New("please fill in all fields correctly")

// InputParser handles parsing of projection input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads projection inputs from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates projection inputs
func (ip *InputParser) Parse(data []byte) (*domain.ProjectionInputs, error) {
	var inputs domain.ProjectionInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &inputs, nil
}

// ValidateInputs validates loaded projection inputs
func (ip *InputParser) ValidateInputs(inputs *domain.ProjectionInputs) error {
	if err := inputs.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// CreateExampleInputs creates an example set of projection inputs
func (ip *InputParser) CreateExampleInputs() *domain.ProjectionInputs {
	return &domain.ProjectionInputs{
		Principal:           decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualRate:          decimal.NewFromFloat(0.06),
		Years:               30,
		Compounding:         domain.CompoundingMonthly,
		RateRange:           decimal.NewFromFloat(0.02),
	}
}
