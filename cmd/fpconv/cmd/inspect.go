/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fpconv/pkg/di"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print statistics and validation results for a template database",
	Long: `Load a template database and report its statistics and validation
findings without writing anything.

Example:
  fpconv inspect --input as608.bin --from as608`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		from, _ := cmd.Flags().GetString("from")

		name, err := resolveFormat("from", from, container.Config().Defaults.From)
		if err != nil {
			return err
		}
		return runInspect(container, input, name)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("input", "i", "", "Input database file (required)")
	inspectCmd.Flags().String("from", "", "Input format")
	if err := inspectCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func runInspect(c *di.Container, input, from string) error {
	conv := c.NewConverter()
	if err := conv.Load(input, from); err != nil {
		return err
	}

	rep := c.NewReportWriter()
	rep.Loaded(input, conv.Source(), conv.SourceSize(), len(conv.Templates()))
	rep.Statistics(conv.Statistics())
	rep.Validation(conv.Validate())
	return nil
}
