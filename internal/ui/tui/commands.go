package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/infra/jsonskills"
	"github.com/caiohportella/skillglyph/internal/infra/workspacefinder"
	"github.com/caiohportella/skillglyph/internal/infra/yamlskills"
	"github.com/caiohportella/skillglyph/internal/ports"
	"github.com/caiohportella/skillglyph/internal/usecase"
)

// searchDebounce is how long the icon search input must be idle before results refresh.
const searchDebounce = 300 * time.Millisecond

func startDir(deps Deps) (string, error) {
	if strings.TrimSpace(deps.StartDir) != "" {
		return deps.StartDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return wd, nil
}

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := startDir(deps)
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: err}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdDebounceSearch schedules a search refresh; the model drops it if a newer keystroke arrived.
func cmdDebounceSearch(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg{seq: seq}
	})
}

func cmdLoadShowcase(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.New(slog.DiscardHandler)
		}
		if deps.Resolver == nil || deps.Labels == nil {
			return showcaseLoadedMsg{err: errors.New("resolver or labels not configured")}
		}

		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			log.Error("showcase.load_config.failed", "err", err)
			return showcaseLoadedMsg{err: err}
		}

		path, loader, err := defaultCatalog(root, cfg)
		if err != nil {
			log.Error("showcase.catalog.missing", "err", err)
			return showcaseLoadedMsg{err: err}
		}

		locale := deps.Locale
		if locale == "" {
			locale = cfg.Locale
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sc, _, err := usecase.NewBuildShowcase(loader, deps.Resolver, deps.Labels).Execute(ctx, path, locale)
		if err != nil {
			log.Error("showcase.failed", "catalog", path, "err", err)
			return showcaseLoadedMsg{err: err}
		}

		log.Info("showcase.built", "catalog", sc.CatalogName, "skills", sc.SkillCount(), "locale", locale)
		return showcaseLoadedMsg{showcase: sc}
	}
}

// defaultCatalog finds the configured default catalog under the skills dir.
func defaultCatalog(root string, cfg domain.Config) (string, ports.SkillCatalogLoader, error) {
	dir := filepath.Join(root, cfg.Paths.SkillsDir)
	name := cfg.Defaults.Catalog

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, yamlskills.NewLoader(yamlskills.WithSkillsDir(cfg.Paths.SkillsDir)), nil
		}
	}

	p := filepath.Join(dir, name+".json")
	if _, err := os.Stat(p); err == nil {
		return p, jsonskills.NewLoader(jsonskills.WithExportsDir(cfg.Paths.SkillsDir)), nil
	}

	return "", nil, &domain.OpError{
		Op:   "tui.catalog",
		Kind: domain.KindNotFound,
		Path: filepath.Join(dir, name+".yaml"),
		Err:  domain.ErrNotFound,
	}
}
