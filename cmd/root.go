package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"daffa.dev/daffash/core"
	"daffa.dev/daffash/core/config"
)

var cfgDir string

// configDir resolves the state directory, honoring --config.
func configDir() (string, error) {
	if cfgDir != "" {
		return cfgDir, nil
	}
	return config.UserConfigDir()
}

func loadConfig() (*config.Configuration, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	fsys := afero.NewOsFs()
	configuration, err := config.Load(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		// First run without `daffash init`: start from the defaults
		// and let Close persist them.
		return config.Default(fsys, dir), nil
	}
	return configuration, err
}

// rootCmd runs the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "daffash",
	Short: "An interactive shell with themes, aliases and history expansion.",
	Long:  `DaffaShell is an interactive command interpreter with color themes, session aliases, history expansion and external pipelines.`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(cfg)
		if err != nil {
			return err
		}
		defer shell.Close()

		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "configuration directory (default ~/"+config.ConfigDirName+")")
}
