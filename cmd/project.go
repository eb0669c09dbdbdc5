package cmd

import (
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/rpgo/savings-projector/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagInputFile    string
	flagPrincipal    string
	flagContribution string
	flagRate         string
	flagRange        string
	flagYears        string
	flagCompounding  string
	flagView         string
	flagDisplay      string
	flagFormat       string
	flagOutDir       string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a projection and print or save a report",
	Example: "  savingsproj project --principal 10000 --contribution 500 --rate 5 --years 20 --compounding quarterly\n" +
		"  savingsproj project -c inputs.yaml --view monthly --display real -f csv --out-dir reports",
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	addInputFlags(projectCmd)
	projectCmd.Flags().StringVar(&flagView, "view", "", "Table granularity: monthly or yearly (default from prefs)")
	projectCmd.Flags().StringVar(&flagDisplay, "display", "", "Amounts: nominal or real (default from prefs)")
	projectCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: console, csv, json, html, all (default from prefs)")
	projectCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Write a timestamped report file into this directory instead of stdout")
}

// addInputFlags registers the projection input flags shared by project and tui.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagInputFile, "config", "c", "", "YAML input file (overrides the input flags)")
	cmd.Flags().StringVar(&flagPrincipal, "principal", "10000", "Initial principal ($)")
	cmd.Flags().StringVar(&flagContribution, "contribution", "500", "Monthly contribution ($)")
	cmd.Flags().StringVar(&flagRate, "rate", "6", "Annual interest rate (%)")
	cmd.Flags().StringVar(&flagRange, "range", "0", "Interest range ± (%)")
	cmd.Flags().StringVar(&flagYears, "years", "30", "Duration in years")
	cmd.Flags().StringVar(&flagCompounding, "compounding", "monthly", "Compounding: monthly, yearly, quarterly, semiannually, daily")
}

// resolveInputs loads inputs from --config when given, otherwise from the input flags.
func resolveInputs() (domain.ProjectionInputs, error) {
	if flagInputFile != "" {
		in, err := config.NewInputParser().LoadFromFile(flagInputFile)
		if err != nil {
			return domain.ProjectionInputs{}, err
		}
		return *in, nil
	}
	return config.ParseForm(config.FormValues{
		Principal:           flagPrincipal,
		MonthlyContribution: flagContribution,
		RatePercent:         flagRate,
		RangePercent:        flagRange,
		Years:               flagYears,
		Compounding:         flagCompounding,
	})
}

func runProject(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPrefs(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(prefs)

	inputs, err := resolveInputs()
	if err != nil {
		return err
	}

	result, err := newEngine(logger).Project(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	view := domain.ParseView(stringFlag(cmd, "view", prefs.Display.View))
	display := domain.ParseDisplayMode(stringFlag(cmd, "display", prefs.Display.Mode))
	format := stringFlag(cmd, "format", prefs.Display.Format)

	if flagOutDir != "" {
		files, err := output.GenerateReport(result, view, display, format, flagOutDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			printf(cmd, "Report written to %s\n", f)
		}
		return nil
	}

	if output.NormalizeFormatName(format) == "all" {
		format = "console"
	}
	data, err := output.Render(result, view, display, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
