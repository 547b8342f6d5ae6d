package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/nidkit/internal/country"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported countries",
	Long: `List the countries with a registered national ID validator.

Examples:
  nidkit countries
  nidkit countries -f json`,
	RunE: runCountries,
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(cmd *cobra.Command, args []string) error {
	registry := country.NewRegistry()

	type entry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	entries := make([]entry, 0)
	for _, code := range registry.Codes() {
		v := registry.Get(code)
		entries = append(entries, entry{Code: string(v.Code()), Name: v.Name()})
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Code, e.Name)
	}
	return nil
}
