package output

import (
	"bytes"
	"fmt"
)

// sparkWidth caps chart points so monthly views fit a terminal line.
const sparkWidth = 60

// ConsoleFormatter renders the summary, a sparkline per series and the ledger table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(view *ProjectionView) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, RenderTitle("SAVINGS PROJECTION"))
	fmt.Fprintln(&buf)

	s := view.Summary
	fmt.Fprintf(&buf, "  %s %s %s\n", headerStyle.Render("Ending balance:"), valueStyle.Render(s.FinalText), mutedStyle.Render(s.ModeLabel))
	fmt.Fprintf(&buf, "  %s %s at %s over %d years\n", mutedStyle.Render("Compounding:"), s.Compounding, FormatRate(s.BaseRate), view.Years)
	if s.RangeText != "" {
		fmt.Fprintf(&buf, "  %s\n", s.RangeText)
	}
	fmt.Fprintln(&buf)

	for _, series := range view.Series {
		fmt.Fprintf(&buf, "  %-22s %s %s\n", series.Name, ColoredSparkline(series.Floats(), sparkWidth, series.Color), mutedStyle.Render(series.LastGrouped()))
	}
	fmt.Fprintln(&buf)

	rows := make([][]string, len(view.Rows))
	for i, r := range view.Rows {
		rows[i] = r.Cells()
	}
	fmt.Fprint(&buf, RenderTable(Table{
		Title:   fmt.Sprintf("%s ledger", titleCase(string(view.View))),
		Headers: TableHeaders,
		Rows:    rows,
	}))
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
