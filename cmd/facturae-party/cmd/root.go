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
	Use:   "facturae-party",
	Short: "Render Facturae party XML fragments",
	Long: `facturae-party renders a party's identity, postal address and contact
information into Facturae 3.2.1 XML fragments.

Supports:
  - AdministrativeCentre blocks (centre code, role, name decomposition)
  - Domestic (AddressInSpain) and overseas address shapes
  - TaxIdentification and LegalEntity/Individual party blocks

Examples:
  # Render the AdministrativeCentre fragment for a party file
  facturae-party format party.json

  # Render several parties as JSON results
  facturae-party format parties/*.json -f json -o results.json

  # Check that party records format cleanly
  facturae-party validate party.json`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "xml", "Output format (xml, json)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
