// =============================================================================
// FIRE 1099 Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (convert, validate, version) are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (fire1099)
//   ├── convertCmd (fire1099 convert)
//   ├── validateCmd (fire1099 validate)
//   └── versionCmd (fire1099 version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the optional configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables progress output when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fire1099",
	Short: "Generate 1099-MISC files for the IRS FIRE system",

	Long: `fire1099 converts structured 1099-MISC filing data into the fixed-width
ASCII format required by the IRS FIRE electronic filing system, per IRS
Publication 1220.

The input is a JSON document describing one transmitter and its payers and
payees. The tool validates it against the filing schema, computes the
derived records (payment totals, state totals, sequence numbers), and writes
a single submission file of 750-character records.

Single-payer submissions only. For multiple payers requiring merged totals,
use multiple input files.

Example Usage:
  fire1099 convert filing.json                  # Write next to the input
  fire1099 convert filing.json --output out.txt # Explicit output path
  fire1099 convert filing.json --debug          # Dump the aggregated tree
  fire1099 validate filing.json                 # Schema check only`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the optional configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable progress output",
	)
}
