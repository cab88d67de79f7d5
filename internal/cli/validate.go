package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var catalog string
	var selector string
	var strict bool
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a skill catalog against the schema and the icon registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, false)
			if err != nil {
				return err
			}

			catalogPath, err := resolveCatalogPath(ws, catalog)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateCatalog(ws.catalogLoader(catalogPath, selector), ws.resolver)
			rep, err := uc.Execute(cmd.Context(), catalogPath)
			if err != nil {
				return err
			}

			if err := printReport(cmd.OutOrStdout(), rep, format); err != nil {
				return err
			}
			if !rep.OK(strict) {
				return fmt.Errorf("catalog %s failed validation (%d error(s), %d warning(s))",
					rep.Catalog, rep.Count(usecase.SeverityError), rep.Count(usecase.SeverityWarning))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&catalog, "catalog", "c", "", "Catalog name or path (defaults to the workspace default catalog)")
	c.Flags().StringVar(&selector, "selector", "", "JSONPath selecting skill records in a JSON export (default $[*])")
	c.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printReport(w io.Writer, rep usecase.ValidationReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "pretty", "":
		fmt.Fprintf(w, "Catalog: %s (%d skills)\n", rep.Catalog, rep.Skills)
		if len(rep.Findings) == 0 {
			fmt.Fprintln(w, "OK")
			return nil
		}
		fmt.Fprintln(w)
		for _, f := range rep.Findings {
			fmt.Fprintf(w, "- [%s] skills[%d].%s %s: %s\n", f.Severity, f.Index, f.Field, f.Skill, f.Message)
		}
		fmt.Fprintf(w, "\n%d error(s), %d warning(s), %d info\n",
			rep.Count(usecase.SeverityError), rep.Count(usecase.SeverityWarning), rep.Count(usecase.SeverityInfo))
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
