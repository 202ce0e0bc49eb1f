// =============================================================================
// QCEFF Table Display - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command takes
// the table path as its only argument and prints the report.
//
// COBRA CLI STRUCTURE:
//   rootCmd (qceff-display <table>)
//   └── versionCmd (qceff-display version)
//
// EXIT STATUS:
//   0  report printed
//   1  table missing, unreadable or malformed, or bad configuration
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qceff-display/internal/types"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional settings file.
var cfgFile string

// verbose enables debug diagnostics on stderr.
var verbose bool

// detailed appends the per-quantity detail blocks to the report.
var detailed bool

// sheet selects the worksheet for .xlsx tables.
var sheet string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "qceff-display [flags] <table.csv>",
	Short: "Pretty print a QCEFF table",
	Long: `qceff-display reads a QCEFF table (the per-quantity quality control and
probit transform configuration) and prints it as a readable report.

The report starts with a summary table, one line per quantity, showing the
three probit distributions with their bounds and the obs increment filter
kind. With --detailed every field of every quantity is listed as well.

Tables are read from CSV, or from an XLSX workbook when the file name ends
in .xlsx.

Example Usage:
  qceff-display qceff_table.csv
  qceff-display --detailed qceff_table.csv
  qceff-display --sheet QCEFF qceff_table.xlsx`,

	Args: cobra.ExactArgs(1),

	// Errors are reported by Execute, which knows how to phrase them.
	SilenceErrors: true,
	SilenceUsage:  true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDisplay(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with status 1 on any failure.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage turns a failure into the one-line diagnostic printed on exit.
func errorMessage(err error) string {
	var pathErr *tableError
	if errors.As(err, &pathErr) && errors.Is(err, types.ErrFileNotFound) {
		return fmt.Sprintf("Error: File '%s' not found.", pathErr.path)
	}
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("Error processing file: %v", pathErr.err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// tableError ties a failure to the table path given on the command line.
type tableError struct {
	path string
	err  error
}

func (e *tableError) Error() string {
	return fmt.Sprintf("%s: %v", e.path, e.err)
}

func (e *tableError) Unwrap() error {
	return e.err
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML settings file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug diagnostics on stderr",
	)

	rootCmd.Flags().BoolVarP(
		&detailed,
		"detailed",
		"d",
		false,
		"Print every field of every quantity after the summary",
	)

	rootCmd.Flags().StringVar(
		&sheet,
		"sheet",
		"",
		"Worksheet to read from an .xlsx table (default: first sheet)",
	)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}

// setOutput redirects the report and diagnostics, for tests.
func setOutput(out, errOut io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
}
