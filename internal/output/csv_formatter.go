package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes the ledger rows of the view, one line per period.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(view *ProjectionView) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(TableHeaders); err != nil {
		return nil, err
	}
	for _, r := range view.Rows {
		if err := w.Write(r.Cells()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
