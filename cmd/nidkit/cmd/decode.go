package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/nidkit/pkg/nidlib"
)

// DecodeResult is the per-input outcome reported by the decode command
type DecodeResult struct {
	Nid   string          `json:"nid"`
	Valid bool            `json:"valid"`
	Info  *nidlib.NidInfo `json:"info,omitempty"`
	Error string          `json:"error,omitempty"`
	Kind  string          `json:"kind,omitempty"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode [nids...]",
	Short: "Decode Albanian NID numbers",
	Long: `Decode one or more Albanian National ID numbers.

A successful decode reports date of birth, sex, and national status.
Input is case-insensitive.

Examples:
  nidkit decode J00101999W
  nidkit decode J00101999W j05115999k -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	results := make([]DecodeResult, 0, len(args))
	allValid := true

	for _, nid := range args {
		printVerbose("decoding %q\n", nid)
		result := DecodeResult{Nid: nid}

		info, err := nidlib.DecodeAlbania(nid)
		if err != nil {
			result.Error = err.Error()
			result.Kind = nidlib.ErrorKind(err)
			allValid = false
		} else {
			result.Valid = true
			result.Info = info
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
				fmt.Printf("✓ %s: born %s, sex %s, national %t\n",
					r.Nid, r.Info.Birthday, r.Info.Sex, r.Info.IsNational)
			} else {
				fmt.Printf("✗ %s: %s\n", r.Nid, r.Error)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("decode failed for some inputs")
	}
	return nil
}
