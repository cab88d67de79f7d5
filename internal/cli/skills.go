package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/infra/logger"
	"github.com/caiohportella/skillglyph/internal/infra/watcher"
	"github.com/caiohportella/skillglyph/internal/usecase"
)

func skillsCmd() *cobra.Command {
	var workspace string
	var catalog string
	var locale string
	var selector string
	var save bool
	var watch bool
	var format string

	c := &cobra.Command{
		Use:   "skills",
		Short: "Render a catalog as a grouped skills showcase",
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

			loc := strings.TrimSpace(locale)
			if loc == "" {
				loc = ws.cfg.Locale
			}

			opts := []usecase.ShowcaseOption{}
			if save {
				if ws.store == nil {
					return fmt.Errorf("--save needs a workspace (tip: run `skillglyph init`)")
				}
				opts = append(opts, usecase.WithShowcaseStore(ws.store))
			}

			uc := usecase.NewBuildShowcase(ws.catalogLoader(catalogPath, selector), ws.resolver, ws.labels, opts...)
			out := cmd.OutOrStdout()

			render := func(ctx context.Context) error {
				sc, id, err := uc.Execute(ctx, catalogPath, loc)
				if err != nil {
					// A failed save still yields a built showcase; a failed load yields none.
					if sc.CatalogName != "" {
						_ = printShowcase(out, sc, id, format)
					}
					return err
				}
				if id != "" {
					logger.L().Info("showcase.saved", "id", id, "catalog", sc.CatalogName, "skills", sc.SkillCount())
				}
				return printShowcase(out, sc, id, format)
			}

			if !watch {
				return render(cmd.Context())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := render(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl+c to stop)\n", catalogPath)

			return watcher.New().Watch(ctx, []string{catalogPath}, func(_ string) {
				fmt.Fprintln(out)
				if err := render(ctx); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&catalog, "catalog", "c", "", "Catalog name or path (defaults to the workspace default catalog)")
	c.Flags().StringVarP(&locale, "locale", "l", "", "Label locale (defaults to the workspace locale)")
	c.Flags().StringVar(&selector, "selector", "", "JSONPath selecting skill records in a JSON export (default $[*])")
	c.Flags().BoolVar(&save, "save", false, "Save the showcase under showcase/")
	c.Flags().BoolVar(&watch, "watch", false, "Re-render when the catalog file changes")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printShowcase(w io.Writer, sc domain.Showcase, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"showcase_id": id,
			"showcase":    sc,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyShowcase(w, sc, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyShowcase(w io.Writer, sc domain.Showcase, id string) {
	fmt.Fprintf(w, "Catalog:  %s\n", sc.CatalogName)
	fmt.Fprintf(w, "Locale:   %s\n", sc.Locale)
	fmt.Fprintf(w, "Skills:   %d\n", sc.SkillCount())
	if id != "" {
		fmt.Fprintf(w, "Saved as: %s\n", id)
	}
	fmt.Fprintln(w)

	for _, g := range sc.Groups {
		fmt.Fprintf(w, "%s\n", g.Label)
		for _, s := range g.Skills {
			fmt.Fprintf(w, "  %s %s", s.Icon.Symbol(), s.Name)
			if detail := skillDetail(s); detail != "" {
				fmt.Fprintf(w, "  (%s)", detail)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

func skillDetail(s domain.SkillView) string {
	var parts []string
	if s.ProficiencyLabel != "" {
		parts = append(parts, s.ProficiencyLabel)
	}
	if s.Percentage != nil {
		parts = append(parts, fmt.Sprintf("%d%%", *s.Percentage))
	}
	if s.YearsOfExperience != nil {
		parts = append(parts, fmt.Sprintf("%gy", *s.YearsOfExperience))
	}
	return strings.Join(parts, ", ")
}
