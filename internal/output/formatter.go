package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(view *ProjectionView) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*ProjectionView) ([]byte, error)
}

func (ff FormatterFunc) Format(v *ProjectionView) ([]byte, error) { return ff.F(v) }
func (ff FormatterFunc) Name() string                             { return ff.ID }

// formatMeta holds the file extension and HTTP content type for a formatter name.
type formatMeta struct {
	ext         string
	contentType string
}

var formatMetadata = map[string]formatMeta{
	"console": {"txt", "text/plain; charset=utf-8"},
	"csv":     {"csv", "text/csv; charset=utf-8"},
	"json":    {"json", "application/json"},
	"html":    {"html", "text/html; charset=utf-8"},
}

// Extension returns the file extension used for a formatter's output.
func Extension(f Formatter) string {
	if m, ok := formatMetadata[f.Name()]; ok {
		return m.ext
	}
	return "txt"
}

// ContentType returns the HTTP content type for a formatter's output.
func ContentType(f Formatter) string {
	if m, ok := formatMetadata[f.Name()]; ok {
		return m.contentType
	}
	return "application/octet-stream"
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, view *ProjectionView, dir string) (string, error) {
	data, err := f.Format(view)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("savings_projection_%s.%s", nowFunc().Format("20060102_150405"), Extension(f)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// nowFunc stamps report filenames; tests may override it.
var nowFunc = time.Now

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"table":       "console",
	"csv-table":   "csv",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LookupFormatter is GetFormatterByName with a descriptive ErrUnsupportedFormat.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
