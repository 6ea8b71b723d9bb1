// =============================================================================
// FIRE 1099 Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks an input document
// against the filing schema without producing any output. Useful for
// verifying a filing before the submission window opens.
//
// COMMAND USAGE:
//   fire1099 validate INPUT
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firefmt/fire-1099/internal/translator"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate INPUT",
	Short: "Validate a JSON filing document without converting it",
	Long: `The validate command decodes the input document and checks it against the
embedded filing schema. It reports success or the validator's detail on
failure, and writes nothing.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate schema-checks one input file.
func runValidate(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	t, err := translator.New()
	if err != nil {
		return err
	}

	if err := t.Validate(data); err != nil {
		return err
	}

	fmt.Printf("✓ %s is valid\n", inputPath)
	return nil
}
