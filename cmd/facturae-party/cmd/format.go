package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/formatter"
	"github.com/facturio/facturae-party/internal/model"
)

var (
	outputFile string
	fullBlocks bool
)

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Render party files as Facturae XML fragments",
	Long: `Render one or more party JSON files as Facturae XML fragments.

Each input file holds a centre code, a role type code and a party record:

  {
    "centre_code": "001",
    "role_type_code": "01",
    "party": {
      "person_type": "F",
      "name": "Ana Gomez Perez",
      "addresses": [{"street": "Calle Mayor 1", "postal_code": "28001",
                     "city": "Madrid", "subdivision_name": "Madrid",
                     "country": {"alpha2": "ES", "alpha3": "ESP"}}]
    }
  }

Examples:
  facturae-party format party.json
  facturae-party format party.json --full
  facturae-party format parties/*.json -f json -o results.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	formatCmd.Flags().BoolVar(&fullBlocks, "full", false, "Also render TaxIdentification and LegalEntity/Individual blocks")
}

// PartyFile is the on-disk input format for the format and validate commands
type PartyFile struct {
	CentreCode   string      `json:"centre_code"`
	RoleTypeCode string      `json:"role_type_code"`
	Party        model.Party `json:"party"`
}

// FormatResult holds the result of formatting a single file
type FormatResult struct {
	File              string `json:"file"`
	Fragment          string `json:"fragment,omitempty"`
	TaxIdentification string `json:"tax_identification,omitempty"`
	Party             string `json:"party,omitempty"`
	Error             string `json:"error,omitempty"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to format")
	}

	printVerbose("Found %d files to format\n", len(files))

	f := formatter.New()
	results := make([]*FormatResult, 0, len(files))
	for _, file := range files {
		printVerbose("Formatting: %s\n", file)

		result := formatFile(f, file)
		results = append(results, result)

		if result.Error != "" {
			printVerbose("  Error: %s\n", result.Error)
		}
	}

	return outputResults(results)
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}
			files = append(files, arg)
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if !info.IsDir() {
				files = append(files, match)
			}
		}
	}

	return files, nil
}

func readPartyFile(path string) (*PartyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var pf PartyFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse party file: %w", err)
	}
	return &pf, nil
}

func formatFile(f *formatter.Formatter, path string) *FormatResult {
	result := &FormatResult{File: path}

	pf, err := readPartyFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	role := model.Role{CentreCode: pf.CentreCode, RoleTypeCode: pf.RoleTypeCode}
	centre, err := f.AdministrativeCentre(role, &pf.Party)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if result.Fragment, err = facturae.Fragment(centre); err != nil {
		result.Error = err.Error()
		return result
	}

	if !fullBlocks {
		return result
	}

	block, err := f.Party(&pf.Party)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if block.LegalEntity != nil {
		result.Party, err = facturae.Fragment(block.LegalEntity)
	} else {
		result.Party, err = facturae.Fragment(block.Individual)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if pf.Party.TaxID != "" {
		taxID, err := f.TaxIdentification(&pf.Party)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		if result.TaxIdentification, err = facturae.Fragment(taxID); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	return result
}

func outputResults(results []*FormatResult) error {
	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "xml":
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", r.File, r.Error)
				continue
			}
			for _, frag := range []string{r.TaxIdentification, r.Fragment, r.Party} {
				if frag != "" {
					fmt.Fprintln(writer, frag)
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
