package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daffa.dev/daffash/commands"
)

// builtinsCmd lists the commands the shell handles without spawning a
// process.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range commands.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
