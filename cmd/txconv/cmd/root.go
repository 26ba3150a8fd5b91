/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ypbank/txconv/pkg/codec"
	"github.com/ypbank/txconv/pkg/config"
	"github.com/ypbank/txconv/pkg/record"
)

var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txconv",
	Short: "txconv - transaction record file converter",
	Long: `txconv converts financial transaction files between the binary,
csv and text on-disk formats, and compares two files for equality.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		switch {
		case configPath != "":
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		case config.ConfigExists(config.GetDefaultConfigPath()):
			loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
			if err != nil {
				return err
			}
			cfg = loaded
		}

		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a txconv config file")
}

// resolveFormat picks the format from the flag value, falling back to the
// config file default.
func resolveFormat(flagValue, cfgValue string) (codec.Format, error) {
	name := flagValue
	if name == "" {
		name = cfgValue
	}
	return codec.ParseFormat(name)
}

// readRecords opens path and decodes it with the given format's reader.
func readRecords(path string, format codec.Format) ([]record.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &codec.Error{Kind: codec.KindRead, Value: path, Err: err}
	}
	defer file.Close()

	records, err := format.NewReader().ReadAll(file)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file":    path,
		"format":  format.String(),
		"records": len(records),
	}).Debug("decoded records")

	return records, nil
}
