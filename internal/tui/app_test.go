package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	result, err := calculation.NewProjectionEngine().Project(context.Background(), domain.ProjectionInputs{
		Principal:           decimal.NewFromInt(5000),
		MonthlyContribution: decimal.NewFromInt(200),
		AnnualRate:          decimal.RequireFromString("0.04"),
		Years:               3,
		Compounding:         domain.CompoundingMonthly,
		RateRange:           decimal.RequireFromString("0.01"),
	})
	require.NoError(t, err)
	return result
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app, cmd
}

func TestNewAppStartsWithRequestedView(t *testing.T) {
	a := NewApp(testResult(t), domain.ViewYearly, domain.DisplayNominal)

	assert.Nil(t, a.Init())
	assert.Equal(t, domain.ViewYearly, a.CurrentView())
	assert.Equal(t, domain.DisplayNominal, a.CurrentDisplay())
	assert.Len(t, a.ProjectionView().Rows, 3)

	out := a.View()
	assert.Contains(t, out, "Savings Projection")
	assert.Contains(t, out, a.ProjectionView().Summary.FinalText)
	assert.Contains(t, out, "(Nominal)")
	assert.Contains(t, out, "Year 1")
}

func TestToggleViewRebuildsRows(t *testing.T) {
	result := testResult(t)
	a := NewApp(result, domain.ViewYearly, domain.DisplayNominal)

	a, cmd := update(t, a, keyPress('v'))
	assert.Nil(t, cmd)
	assert.Equal(t, domain.ViewMonthly, a.CurrentView())
	assert.Len(t, a.ProjectionView().Rows, 36)
	assert.Contains(t, a.View(), "Month 1")

	a, _ = update(t, a, keyPress('v'))
	assert.Equal(t, domain.ViewYearly, a.CurrentView())
	assert.Len(t, a.ProjectionView().Rows, 3)
}

func TestToggleDisplayKeepsResult(t *testing.T) {
	result := testResult(t)
	nominalFinal := result.FinalBalance()
	a := NewApp(result, domain.ViewYearly, domain.DisplayNominal)
	before := a.ProjectionView().Summary.FinalText

	a, _ = update(t, a, keyPress('r'))
	assert.Equal(t, domain.DisplayReal, a.CurrentDisplay())
	assert.NotEqual(t, before, a.ProjectionView().Summary.FinalText)
	assert.Contains(t, a.View(), "(Inflation-adjusted, 3%)")
	assert.True(t, nominalFinal.Equal(result.FinalBalance()))

	a, _ = update(t, a, keyPress('r'))
	assert.Equal(t, before, a.ProjectionView().Summary.FinalText)
}

func TestQuitKeys(t *testing.T) {
	a := NewApp(testResult(t), domain.ViewYearly, domain.DisplayNominal)

	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := update(t, a, msg)
		require.NotNil(t, cmd, "key %q", msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowResize(t *testing.T) {
	a := NewApp(testResult(t), domain.ViewMonthly, domain.DisplayNominal)
	// Height reports the rows below the header, so measure the header once.
	headerRows := initialTableHeight - a.table.Height()
	require.Positive(t, headerRows)

	a, cmd := update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 40-chromeHeight-headerRows, a.table.Height())

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, minTableHeight-headerRows, a.table.Height())
}
