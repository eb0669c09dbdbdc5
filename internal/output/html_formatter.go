package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
)

// HTMLFormatter produces a standalone HTML report with a line chart and the ledger table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"amount": FormatAmount,
	"rate":   FormatRate,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartDataset mirrors a Chart.js line dataset.
type chartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Fill            bool      `json:"fill"`
	Tension         float64   `json:"tension"`
	PointRadius     int       `json:"pointRadius"`
}

func (h HTMLFormatter) Format(view *ProjectionView) ([]byte, error) {
	datasets := make([]chartDataset, 0, len(view.Series))
	for i, s := range view.Series {
		ds := chartDataset{
			Label:       s.Name,
			Data:        s.Floats(),
			BorderColor: s.Color,
			Tension:     0.15,
		}
		if i == 0 {
			ds.BackgroundColor = "rgba(59,130,246,.15)"
			ds.Fill = true
		}
		datasets = append(datasets, ds)
	}

	data := struct {
		*ProjectionView
		Headers  []string
		Datasets []chartDataset
	}{view, TableHeaders, datasets}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
