/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/fpconv/pkg/di"
	"github.com/ssargent/fpconv/pkg/format"
)

type convertOptions struct {
	Input    string
	Output   string
	From     string
	To       string
	Stats    bool
	Validate bool
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a template database to another sensor layout",
	Long: `Convert a fingerprint template database from one sensor layout to another.

Occupied slots are copied in order into the target layout. Templates larger
than the target slot are truncated and smaller ones are zero-padded. The
output is padded with empty slots up to the target's full capacity.

Examples:
  fpconv convert --input as608.bin --output r307.bin --from as608 --to r307
  fpconv convert --input db.bin --output gt.bin --from r307 --to gt511c3 --stats --validate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convertOptions{}
		opts.Input, _ = cmd.Flags().GetString("input")
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.Stats, _ = cmd.Flags().GetBool("stats")
		opts.Validate, _ = cmd.Flags().GetBool("validate")

		var err error
		from, _ := cmd.Flags().GetString("from")
		if opts.From, err = resolveFormat("from", from, container.Config().Defaults.From); err != nil {
			return err
		}
		to, _ := cmd.Flags().GetString("to")
		if opts.To, err = resolveFormat("to", to, container.Config().Defaults.To); err != nil {
			return err
		}

		return runConvert(container, opts)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	formats := strings.Join(format.Names(), "|")
	convertCmd.Flags().StringP("input", "i", "", "Input database file (required)")
	convertCmd.Flags().StringP("output", "o", "", "Output database file (required)")
	convertCmd.Flags().String("from", "", "Input format: "+formats)
	convertCmd.Flags().String("to", "", "Output format: "+formats)
	convertCmd.Flags().Bool("stats", false, "Print database statistics before converting")
	convertCmd.Flags().Bool("validate", false, "Validate templates before converting")
	for _, name := range []string{"input", "output"} {
		if err := convertCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

// resolveFormat picks the flag value or the configured default and checks it
// against the known format names
func resolveFormat(flag, value, fallback string) (string, error) {
	if value == "" {
		value = fallback
	}
	if value == "" {
		return "", fmt.Errorf("required flag(s) \"%s\" not set", flag)
	}

	name := strings.ToLower(value)
	for _, known := range format.Names() {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("invalid argument %q for \"--%s\" flag: must be one of %s",
		value, flag, strings.Join(format.Names(), ", "))
}

func runConvert(c *di.Container, opts convertOptions) error {
	conv := c.NewConverter()
	rep := c.NewReportWriter()

	if err := conv.Load(opts.Input, opts.From); err != nil {
		return err
	}
	rep.Loaded(opts.Input, conv.Source(), conv.SourceSize(), len(conv.Templates()))

	if opts.Stats {
		rep.Statistics(conv.Statistics())
	}
	if opts.Validate {
		rep.Validation(conv.Validate())
	}
	fmt.Fprintln(c.Stdout())

	res, err := conv.Save(opts.Output, opts.To)
	if err != nil {
		return err
	}
	rep.Saved(res)
	rep.Completed()

	return nil
}
