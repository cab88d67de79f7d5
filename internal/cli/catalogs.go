package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func catalogsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "catalogs",
		Short: "Manage skill catalogs in a workspace",
	}

	c.AddCommand(catalogsListCmd())
	return c
}

func catalogsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, true)
			if err != nil {
				return err
			}

			refs, err := ws.listCatalogs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no catalogs found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Catalog)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
