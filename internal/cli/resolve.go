package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/domain"
)

func resolveCmd() *cobra.Command {
	var workspace string
	var icon string
	var explain bool
	var format string

	c := &cobra.Command{
		Use:   "resolve <skill name>",
		Short: "Resolve a skill name to an icon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd.Context(), workspace, false)
			if err != nil {
				return err
			}

			skill := strings.Join(args, " ")
			res := ws.resolver.Explain(skill, icon)
			return printResolution(cmd.OutOrStdout(), skill, res, explain, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&icon, "icon", "", "Explicit icon identifier chosen for the skill")
	c.Flags().BoolVar(&explain, "explain", false, "Show which resolution stage matched")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printResolution(w io.Writer, skill string, res domain.Resolution, explain bool, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"skill":      skill,
			"resolution": res,
		})
	case "pretty", "":
		if !explain {
			fmt.Fprintf(w, "%s %s\n", res.Icon.Symbol(), res.Icon.ID)
			return nil
		}
		fmt.Fprintf(w, "Skill:  %s\n", skill)
		fmt.Fprintf(w, "Icon:   %s %s (%s)\n", res.Icon.Symbol(), res.Icon.ID, res.Icon.Source)
		fmt.Fprintf(w, "Stage:  %s\n", res.Stage)
		if res.Key != "" {
			fmt.Fprintf(w, "Key:    %q\n", res.Key)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
