package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daffa.dev/daffash/core/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Show the available color themes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
