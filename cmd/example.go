package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/output"
	"github.com/spf13/cobra"
)

var flagForce bool

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example YAML input file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
}

func runExample(cmd *cobra.Command, args []string) error {
	filename := "example_inputs.yaml"
	if len(args) == 1 {
		filename = args[0]
	}
	if _, err := os.Stat(filename); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
	}

	if err := output.SaveInputs(config.NewInputParser().CreateExampleInputs(), filename); err != nil {
		return fmt.Errorf("failed to write example inputs: %w", err)
	}
	printf(cmd, "Example inputs written to %s\n", filename)
	return nil
}
