package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "nidkit",
	Short: "Validate and decode national identification numbers",
	Long: `nidkit validates and decodes government-issued national ID numbers.

Supported countries:
  - Albania (AL): full decode - date of birth, sex, national status
  - Kosovo  (XK): validation only

Examples:
  # Decode an Albanian NID
  nidkit decode J00101999W

  # Validate a Kosovo personal number
  nidkit validate --country XK 1234567892

  # Start the HTTP API
  nidkit serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
