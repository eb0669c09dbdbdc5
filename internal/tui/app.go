// Package tui is the interactive terminal front end: an input form followed by
// a result screen whose view and display toggles re-render the held projection.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/rpgo/savings-projector/internal/output"
)

const (
	minTableHeight     = 5
	initialTableHeight = 12 // until the first WindowSizeMsg
	chromeHeight       = 14 // title, summary, sparklines and help
	sparkWidth         = 60
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(output.ColorText).
			Background(lipgloss.Color("#3b82f6")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(output.ColorTextMuted)
	valueStyle = lipgloss.NewStyle().Foreground(output.ColorText).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(output.ColorTextDim)
)

var columnWidths = []int{12, 22, 19, 16, 20}

// App renders a ProjectionResult. It never recomputes the projection.
type App struct {
	result  *domain.ProjectionResult
	view    domain.View
	display domain.DisplayMode
	pv      *output.ProjectionView
	table   table.Model
	width   int
	height  int
}

// NewApp creates the result screen for result.
func NewApp(result *domain.ProjectionResult, view domain.View, display domain.DisplayMode) App {
	columns := make([]table.Column, len(output.TableHeaders))
	for i, h := range output.TableHeaders {
		columns[i] = table.Column{Title: h, Width: columnWidths[i]}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(output.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(output.ColorText).
		Background(lipgloss.Color("#1e3a8a"))

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		// Styles first: the header's rendered height is subtracted from the table height.
		table.WithStyles(styles),
		table.WithHeight(initialTableHeight),
	)

	a := App{
		result:  result,
		view:    view,
		display: display,
		table:   t,
	}
	a.rebuild()
	return a
}

// CurrentView returns the active granularity.
func (a App) CurrentView() domain.View { return a.view }

// CurrentDisplay returns the active display mode.
func (a App) CurrentDisplay() domain.DisplayMode { return a.display }

// ProjectionView returns the rendered view currently shown.
func (a App) ProjectionView() *output.ProjectionView { return a.pv }

func (a *App) rebuild() {
	a.pv = output.BuildView(a.result, a.view, a.display)
	rows := make([]table.Row, len(a.pv.Rows))
	for i, r := range a.pv.Rows {
		rows[i] = table.Row(r.Cells())
	}
	a.table.SetRows(rows)
	a.table.GotoTop()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.SetHeight(max(minTableHeight, msg.Height-chromeHeight))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "v":
			a.view = a.view.Toggle()
			a.rebuild()
			return a, nil
		case "r":
			a.display = a.display.Toggle()
			a.rebuild()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder
	s := a.pv.Summary

	b.WriteString(titleStyle.Render("Savings Projection"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		labelStyle.Render("Ending balance:"), valueStyle.Render(s.FinalText), labelStyle.Render(s.ModeLabel)))
	b.WriteString(fmt.Sprintf("  %s %s at %s over %d years\n",
		labelStyle.Render("Compounding:"), s.Compounding, output.FormatRate(s.BaseRate), a.pv.Years))
	if s.RangeText != "" {
		b.WriteString("  " + s.RangeText + "\n")
	}
	b.WriteString("\n")

	for _, series := range a.pv.Series {
		b.WriteString(fmt.Sprintf("  %-22s %s %s\n", series.Name,
			output.ColoredSparkline(series.Floats(), sparkWidth, series.Color), labelStyle.Render(series.LastGrouped())))
	}
	b.WriteString("\n")

	b.WriteString(a.table.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %s view • %s amounts • v: toggle view • r: toggle real/nominal • ↑/↓: scroll • q: quit",
		a.view, a.display)))
	b.WriteString("\n")
	return b.String()
}

// Run shows result in a full-screen program until the user quits.
func Run(result *domain.ProjectionResult, view domain.View, display domain.DisplayMode) error {
	p := tea.NewProgram(NewApp(result, view, display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
