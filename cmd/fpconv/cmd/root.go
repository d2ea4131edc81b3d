/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/fpconv/pkg/config"
	"github.com/ssargent/fpconv/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fpconv",
	Short: "Fingerprint template database converter",
	Long: `fpconv converts fingerprint template databases between sensor layouts.

A template database is a raw binary image of fixed-size slots. Supported
layouts are AS608, R307 and GT-511C3; run "fpconv formats" for details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			container = di.NewContainer()
		}

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
			configPath = config.GetDefaultConfigPath()
		}
		if configPath != "" {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			container.SetConfig(cfg)
		}

		if cmd.Flags().Changed("log-level") {
			level, _ := cmd.Flags().GetString("log-level")
			if _, err := config.ParseLevel(level); err != nil {
				return err
			}
			container.Config().Logging.Level = level
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			container.Config().Report.Color = false
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.OutOrStdout(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/fpconv/config.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
