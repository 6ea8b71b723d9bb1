// =============================================================================
// FIRE 1099 Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the full conversion
// pipeline over one input document.
//
// COMMAND USAGE:
//   fire1099 convert INPUT [flags]
//
// FLAGS:
//   --output  : Path for the generated FIRE file (default: sibling of the
//               input, named from the payment year and a UTC timestamp)
//   --debug   : Dump the aggregated master tree as JSON before encoding
//   --report  : Path for an XLSX summary workbook of the submission
//
// The output is written atomically: a failed conversion never leaves a
// partial FIRE file behind.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefmt/fire-1099/internal/config"
	"github.com/firefmt/fire-1099/internal/report"
	"github.com/firefmt/fire-1099/internal/translator"
	"github.com/firefmt/fire-1099/pkg/utils"
)

// outputPath is the explicit output path, empty for the default naming.
var outputPath string

// debug dumps the aggregated tree before encoding.
var debug bool

// reportPath is where the XLSX summary workbook is written, empty for none.
var reportPath string

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert INPUT",
	Short: "Convert a JSON filing document into an IRS FIRE submission file",
	Long: `The convert command reads a JSON input document, validates it against the
filing schema, computes all derived records (end-of-payer totals, CF/SF
state totals, sequence numbers), and writes the fixed-width FIRE file.

Any validation or encoding failure aborts the run with no output written.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(
		&outputPath,
		"output",
		"",
		"Path for the generated FIRE file",
	)

	convertCmd.Flags().BoolVar(
		&debug,
		"debug",
		false,
		"Dump the aggregated master tree as JSON before encoding",
	)

	convertCmd.Flags().StringVar(
		&reportPath,
		"report",
		"",
		"Path for an XLSX summary workbook",
	)
}

// runConvert executes the conversion pipeline for one input file.
func runConvert(inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	t, err := translator.New()
	if err != nil {
		return err
	}

	opts := translator.Options{
		Debug:       debug || cfg.Debug,
		DebugWriter: os.Stdout,
	}

	if verbose {
		fmt.Printf("Converting %s...\n", inputPath)
	}

	out, sub, err := t.Convert(data, opts)
	if err != nil {
		return err
	}

	dest := outputPath
	if dest == "" {
		year := sub.Transmitter["payment_year"]
		dest = utils.DefaultOutputPath(inputPath, cfg.OutputDir, year, time.Now())
	}

	if err := utils.EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(dest, []byte(out)); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Wrote %d records (%d bytes) to %s\n",
			sub.RecordCount(), len(out), dest)
	}

	summary := reportPath
	if summary == "" {
		summary = cfg.ReportFile
	}
	if summary != "" {
		if err := report.Write(sub, summary); err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Wrote summary report to %s\n", summary)
		}
	}

	fmt.Printf("✓ %s -> %s\n", filepath.Base(inputPath), dest)
	return nil
}
