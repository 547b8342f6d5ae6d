package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/nidkit/pkg/nidlib"
)

var validateCountry string

// ValidateResult is the per-input outcome reported by the validate command
type ValidateResult struct {
	Nid     string `json:"nid"`
	Country string `json:"country"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [nids...]",
	Short: "Validate national ID numbers",
	Long: `Validate one or more national ID numbers for a given country.

Examples:
  nidkit validate J00101999W
  nidkit validate --country XK 1234567892 9000000001
  nidkit validate --country XK 1234567890 -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateCountry, "country", "c", "AL", "Country code (AL, XK)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	code := nidlib.CountryCode(validateCountry)
	results := make([]ValidateResult, 0, len(args))
	allValid := true

	for _, nid := range args {
		printVerbose("validating %q for %s\n", nid, code)
		result := ValidateResult{Nid: nid, Country: validateCountry}

		if err := nidlib.Validate(code, nid); err != nil {
			result.Error = err.Error()
			result.Kind = nidlib.ErrorKind(err)
			allValid = false
		} else {
			result.Valid = true
		}
		results = append(results, result)
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.Nid)
			} else {
				fmt.Printf("✗ %s: %s\n", r.Nid, r.Error)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some inputs")
	}
	return nil
}
