package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/domain"
)

func localesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "locales",
		Short: "Inspect label locales",
	}

	c.AddCommand(localesListCmd())
	return c
}

func localesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available label locales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active := ws.labels.Match(ws.cfg.Locale).String()
			fmt.Fprintf(out, "Configured: %s (matches %s)\n\n", ws.cfg.Locale, active)

			for _, loc := range ws.labels.Locales() {
				mark := " "
				if loc == active {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s  %s, %s\n", mark, loc,
					ws.labels.CategoryLabel(loc, domain.CategoryAIML),
					ws.labels.ProficiencyLabel(loc, domain.ProficiencyAdvanced))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
