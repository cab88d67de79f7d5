package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/usecase"
)

func iconsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "icons",
		Short: "Browse the icon registry",
	}

	c.AddCommand(iconsListCmd(), iconsSearchCmd())
	return c
}

func iconsListCmd() *cobra.Command {
	var workspace string
	var source string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered icon identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, false)
			if err != nil {
				return err
			}

			var icons []domain.Icon
			for _, ic := range ws.registry.Icons() {
				if source == "" || ic.Source == source {
					icons = append(icons, ic)
				}
			}

			if err := printIcons(cmd.OutOrStdout(), icons, format); err != nil {
				return err
			}
			if format != "json" {
				fmt.Fprintln(cmd.OutOrStdout())
				printRegistryStats(cmd.OutOrStdout(), ws.registry.Stats())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&source, "source", "", "Only list icons from this source (custom|lucide|simple-icons|ant-design)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func iconsSearchCmd() *cobra.Command {
	var workspace string
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search icon identifiers by substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, false)
			if err != nil {
				return err
			}

			icons := usecase.NewSearchIcons(ws.registry).Execute(args[0], limit)
			if len(icons) == 0 && format != "json" {
				fmt.Fprintln(cmd.OutOrStdout(), "(no icons found)")
				return nil
			}
			return printIcons(cmd.OutOrStdout(), icons, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum results (0 for all)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printIcons(w io.Writer, icons []domain.Icon, format string) error {
	switch format {
	case "json":
		if icons == nil {
			icons = []domain.Icon{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(icons)
	case "pretty", "":
		for _, ic := range icons {
			fmt.Fprintf(w, "%s  %-28s %-22s (%s)\n", ic.Symbol(), ic.ID, ic.DisplayName(), ic.Source)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRegistryStats(w io.Writer, stats []domain.SourceStats) {
	for _, s := range stats {
		fmt.Fprintf(w, "%-13s added=%d shadowed=%d rejected=%d\n", s.Source, s.Added, s.Shadowed, s.Rejected)
	}
}
