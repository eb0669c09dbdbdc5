package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/savings-projector/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current preferences",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with default values",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing preferences file")
}

func prefsPath() string {
	if flagPrefs != "" {
		return flagPrefs
	}
	return config.PreferencesPath()
}

func runConfig(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPrefs(cmd)
	if err != nil {
		return err
	}

	path := prefsPath()
	printf(cmd, "  Preferences file: %s\n", path)
	if _, err := os.Stat(path); err == nil {
		printf(cmd, "  Status: loaded\n")
	} else {
		printf(cmd, "  Status: using defaults (no preferences file)\n")
	}
	printf(cmd, "\n")

	printf(cmd, "  [Display]\n")
	printf(cmd, "    View:    %s\n", prefs.Display.View)
	printf(cmd, "    Mode:    %s\n", prefs.Display.Mode)
	printf(cmd, "    Format:  %s\n", prefs.Display.Format)
	printf(cmd, "\n")

	printf(cmd, "  [Server]\n")
	printf(cmd, "    Address:   %s\n", prefs.Server.Addr)
	if prefs.Server.RedisAddr != "" {
		printf(cmd, "    Redis:     %s\n", prefs.Server.RedisAddr)
	} else {
		printf(cmd, "    Redis:     not configured (in-memory cache)\n")
	}
	printf(cmd, "    Cache TTL: %s\n", prefs.Server.CacheTTL.Duration)
	printf(cmd, "\n")

	printf(cmd, "  [Logging]\n")
	printf(cmd, "    Level:   %s\n", prefs.Logging.Level)
	printf(cmd, "    Pretty:  %v\n", prefs.Logging.Pretty)
	printf(cmd, "\n")

	printf(cmd, "  Run `savingsproj config init` to write a preferences file.\n")
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := prefsPath()
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SavePreferences(path, config.DefaultPreferences()); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	printf(cmd, "Preferences written to %s\n", path)
	return nil
}
