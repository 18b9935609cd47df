// Root command for the camino CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/trailforge/camino/internal/paths"
)

// Version is the CLI version string.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagTrail     string
	flagLogLevel  string
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir  string
	configLogLevel string
)

var rootCmd = &cobra.Command{
	Use:     "camino",
	Short:   "Camino is a trip planner for multi-day hiking trails",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configLogLevel = cfg.GetString(cfgKeyLogLevel)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagTrail, "trail", "", "trail name (default: the current trail)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(trailCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(paceCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(zeroCmd)
	rootCmd.AddCommand(attractionCmd)
}

// resolveDataDir returns the data directory path following the precedence
// --data-dir flag > config.yaml data_dir > CAMINO_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > CAMINO_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveLogLevel returns the log level from flag or config.yaml.
func resolveLogLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return configLogLevel
}
