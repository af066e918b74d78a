package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/facturio/facturae-party/internal/formatter"
	"github.com/facturio/facturae-party/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check that party files format cleanly",
	Long: `Check that one or more party JSON files can be rendered as Facturae
fragments: required fields present, natural-person names decomposable,
addresses carrying a country.

Examples:
  facturae-party validate party.json
  facturae-party validate parties/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	f := formatter.New()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTATUS\tDETAILS")

	invalid := 0
	for _, file := range files {
		problems := validateFile(f, file)
		if len(problems) == 0 {
			fmt.Fprintf(tw, "%s\tOK\t\n", file)
			continue
		}
		invalid++
		for _, p := range problems {
			fmt.Fprintf(tw, "%s\tINVALID\t%s\n", file, p)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(files))
	}
	return nil
}

func validateFile(f *formatter.Formatter, path string) []string {
	pf, err := readPartyFile(path)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	role := model.Role{CentreCode: pf.CentreCode, RoleTypeCode: pf.RoleTypeCode}
	if _, err := f.AdministrativeCentre(role, &pf.Party); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := f.Party(&pf.Party); err != nil {
		problems = append(problems, err.Error())
	}
	if pf.Party.TaxID != "" {
		if _, err := f.TaxIdentification(&pf.Party); err != nil {
			problems = append(problems, err.Error())
		}
	}
	return problems
}
