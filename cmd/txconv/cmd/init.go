package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ypbank/txconv/pkg/config"
)

var (
	initPath  string
	initForce bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default txconv config file",
	Long: `Write a default txconv config file.

The file holds the default input/output formats and the log level, and is
picked up by every command. Without --path it is written to the default
config location.

Example:
  txconv init --path ./txconv.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initPath
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !initForce {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}

		if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
			return err
		}

		cmd.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initPath, "path", "", "Where to write the config file (default: the default config location)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
