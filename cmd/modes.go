package cmd

import (
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported compounding identifiers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, m := range domain.CompoundingModes() {
			printf(cmd, "  %-14s %s\n", m.String(), m.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
