package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/bighelp/internal/config"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every lesson as YAML, TOML or JSON",
	Long: `Export the tutorial content for use in other tools.

Examples:
  bighelp export                          # YAML to stdout
  bighelp export --format json -o out.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatYAML), "Output format (yaml, toml, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")

	_ = exportCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			out[i] = string(f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		names := make([]string, len(export.Formats))
		for i, f := range export.Formats {
			names[i] = string(f)
		}
		return &config.UserError{
			Code:       config.ErrCodeInvalidFlag,
			Message:    fmt.Sprintf("unknown export format %q", exportFormat),
			Context:    "--format",
			Suggestion: "Use one of: " + strings.Join(names, ", "),
			Underlying: err,
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := export.Write(out, tutorial.Default(), format); err != nil {
		return fmt.Errorf("exporting tutorials: %w", err)
	}
	if exportOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported tutorials to %s\n", exportOutput)
	}
	return nil
}
