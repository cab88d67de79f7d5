package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/caiohportella/skillglyph/internal/infra/envconfig"
	"github.com/caiohportella/skillglyph/internal/infra/fsworkspace"
	"github.com/caiohportella/skillglyph/internal/infra/logger"
	"github.com/caiohportella/skillglyph/internal/infra/workspacefinder"
	"github.com/caiohportella/skillglyph/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var logConsole bool
	var closeLog func() error

	cmd := &cobra.Command{
		Use:          "skillglyph",
		Short:        "skillglyph resolves portfolio skills to icons",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			ev, err := envconfig.Parse()
			if err != nil {
				return err
			}

			workspace := ev.Workspace
			if f := c.Flags().Lookup("workspace"); f != nil && f.Value.String() != "" {
				workspace = f.Value.String()
			}

			lc := logger.Config{
				Debug:   debug || ev.Debug,
				Console: logConsole || ev.LogConsole,
				Stderr:  c.ErrOrStderr(),
			}

			// The log file lives only under an initialized workspace.
			root, ferr := resolveWorkspaceRoot(workspace)
			if ferr != nil || !fileExists(filepath.Join(root, workspacefinder.ConfigFileName)) {
				if lc.Console {
					closeLog = logger.SetupConsole(lc)
				}
				return nil
			}

			lc.Root = root
			closeLog, _ = logger.Setup(lc)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			ws, err := loadWorkspace(c.Context(), "", false)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Resolver:             ws.resolver,
				Labels:               ws.labels,
				Locale:               ws.cfg.Locale,
				StartDir:             wd,
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .skillglyph/logs/skillglyph.log")
	cmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "also write human-readable logs to stderr")

	cmd.AddCommand(
		resolveCmd(),
		iconsCmd(),
		skillsCmd(),
		validateCmd(),
		catalogsCmd(),
		localesCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
