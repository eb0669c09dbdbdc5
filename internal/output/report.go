package output

import (
	"fmt"
	"os"

	"github.com/rpgo/savings-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render builds the view for result and formats it with the named formatter.
func Render(result *domain.ProjectionResult, view domain.View, display domain.DisplayMode, format string) ([]byte, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(BuildView(result, view, display))
}

// GenerateReport renders result with the named formatter into a timestamped file in dir
// and returns the file name. The format "all" writes one file per formatter.
func GenerateReport(result *domain.ProjectionResult, view domain.View, display domain.DisplayMode, format, dir string) ([]string, error) {
	pv := BuildView(result, view, display)

	if NormalizeFormatName(format) == "all" {
		files := make([]string, 0, len(builtInFormatters))
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, pv, dir)
			if err != nil {
				return files, fmt.Errorf("writing %s report: %w", f.Name(), err)
			}
			files = append(files, name)
		}
		return files, nil
	}

	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, pv, dir)
	if err != nil {
		return nil, fmt.Errorf("writing %s report: %w", f.Name(), err)
	}
	return []string{name}, nil
}

// SaveInputs writes projection inputs as YAML that LoadFromFile can read back.
func SaveInputs(inputs *domain.ProjectionInputs, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
