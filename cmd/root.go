// Package cmd implements the savingsproj CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagPrefs    string
	flagLogLevel string
	flagPretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "savingsproj",
	Short: "Savings growth projection calculator",
	Long: "Project how a savings balance grows under monthly contributions and\n" +
		"monthly, yearly, quarterly, semi-annual or daily compounding.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", "", "Preferences file (default $XDG_CONFIG_HOME/savingsproj/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "Human-readable log output")
}

// loadPrefs reads preferences and applies persistent flag overrides.
func loadPrefs(cmd *cobra.Command) (config.Preferences, error) {
	prefs, err := config.LoadPreferences(flagPrefs)
	if err != nil {
		return prefs, err
	}
	if cmd.Flags().Changed("log-level") {
		prefs.Logging.Level = flagLogLevel
	}
	if cmd.Flags().Changed("pretty") {
		prefs.Logging.Pretty = flagPretty
	}
	return prefs, nil
}

// newLogger builds the stderr logger described by prefs.
func newLogger(prefs config.Preferences) zerolog.Logger {
	return logging.New(os.Stderr, logging.Options{
		Level:  prefs.Logging.Level,
		Pretty: prefs.Logging.Pretty,
	})
}

// newEngine returns a projection engine logging through logger.
func newEngine(logger zerolog.Logger) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logging.NewEngineLogger(logger))
	return engine
}

// stringFlag returns the flag value when set on the command line, otherwise fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
