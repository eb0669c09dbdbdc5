package output

import (
	"encoding/json"
)

// JSONFormatter serializes the rendered view as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(view *ProjectionView) ([]byte, error) {
	return json.MarshalIndent(view, "", "  ")
}
