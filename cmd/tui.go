package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/rpgo/savings-projector/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Enter inputs in a form and explore the projection interactively",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVarP(&flagInputFile, "config", "c", "", "YAML input file (skips the form)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPrefs(cmd)
	if err != nil {
		return err
	}
	// Logs would corrupt the alternate screen; only errors are kept.
	prefs.Logging.Level = "error"
	logger := newLogger(prefs)

	var inputs domain.ProjectionInputs
	if flagInputFile != "" {
		in, err := config.NewInputParser().LoadFromFile(flagInputFile)
		if err != nil {
			return err
		}
		inputs = *in
	} else {
		inputs, err = tui.RunForm(*config.NewInputParser().CreateExampleInputs())
		if errors.Is(err, tui.ErrFormAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	result, err := newEngine(logger).Project(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	// Force TrueColor so the chart and table colours survive terminals that under-report support.
	lipgloss.SetColorProfile(termenv.TrueColor)

	view := domain.ParseView(prefs.Display.View)
	display := domain.ParseDisplayMode(prefs.Display.Mode)
	if err := tui.Run(result, view, display); err != nil {
		logger.Error().Err(err).Msg("tui exited with error")
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
