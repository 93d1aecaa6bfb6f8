package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"daffa.dev/daffash/core/config"
)

// initCmd writes the default configuration so it can be edited before
// the first interactive session.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the shell configuration directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir, err := configDir()
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		if err := fsys.MkdirAll(dir, 0700); err != nil {
			return err
		}

		logger := log.New(cmd.ErrOrStderr(), "", 0)
		_, err = config.Initialize(fsys, dir, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
