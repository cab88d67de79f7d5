package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/infra/envconfig"
	"github.com/caiohportella/skillglyph/internal/infra/iconmanifest"
	"github.com/caiohportella/skillglyph/internal/infra/jsonskills"
	"github.com/caiohportella/skillglyph/internal/infra/labels"
	"github.com/caiohportella/skillglyph/internal/infra/logger"
	"github.com/caiohportella/skillglyph/internal/infra/showcasestore"
	"github.com/caiohportella/skillglyph/internal/infra/workspacefinder"
	"github.com/caiohportella/skillglyph/internal/infra/yamlskills"
	"github.com/caiohportella/skillglyph/internal/ports"
	"github.com/caiohportella/skillglyph/internal/usecase"
)

type workspaceCtx struct {
	// root is empty when commands run without a workspace on defaults.
	root string
	cfg  domain.Config

	yamlCatalogs *yamlskills.Loader
	jsonCatalogs *jsonskills.Loader

	registry *domain.Registry
	resolver *domain.IconResolver
	labels   *labels.Translator
	store    ports.ShowcaseStore
}

// loadWorkspace wires config, icon registry, loaders and store for a command.
// When required is false a missing workspace falls back to the default config.
func loadWorkspace(ctx context.Context, workspaceFlag string, required bool) (*workspaceCtx, error) {
	ev, err := envconfig.Parse()
	if err != nil {
		return nil, err
	}

	flag := workspaceFlag
	if strings.TrimSpace(flag) == "" {
		flag = ev.Workspace
	}

	cfg := domain.DefaultConfig()
	root, err := resolveWorkspaceRoot(flag)
	switch {
	case err == nil:
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil {
			return nil, err
		}
	case required || strings.TrimSpace(flag) != "":
		return nil, err
	default:
		root = ""
	}
	cfg = ev.Apply(cfg)

	reg, err := usecase.NewBuildRegistry(
		iconmanifest.Sources(cfg.Sources.Disabled...),
		usecase.WithRegistryLogger(logger.L()),
	).Execute(ctx)
	if err != nil {
		return nil, err
	}

	tr, err := labels.New()
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:         root,
		cfg:          cfg,
		yamlCatalogs: yamlskills.NewLoader(yamlskills.WithSkillsDir(cfg.Paths.SkillsDir)),
		jsonCatalogs: jsonskills.NewLoader(jsonskills.WithExportsDir(cfg.Paths.SkillsDir)),
		registry:     reg,
		resolver:     domain.NewIconResolver(reg, domain.WithDefaultIcon(cfg.Defaults.Icon)),
		labels:       tr,
	}
	if root != "" {
		ws.store = showcasestore.NewJSONStore(root, cfg, showcasestore.WithIndex(true))
	}
	return ws, nil
}

// catalogLoader picks the loader for a catalog file by extension.
func (ws *workspaceCtx) catalogLoader(path, selector string) ports.SkillCatalogLoader {
	if isJSON(path) {
		if strings.TrimSpace(selector) != "" {
			return jsonskills.NewLoader(
				jsonskills.WithExportsDir(ws.cfg.Paths.SkillsDir),
				jsonskills.WithSelector(selector),
			)
		}
		return ws.jsonCatalogs
	}
	return ws.yamlCatalogs
}

// listCatalogs returns YAML catalogs followed by JSON exports.
func (ws *workspaceCtx) listCatalogs() ([]domain.CatalogRef, error) {
	refs, err := ws.yamlCatalogs.ListCatalogs(ws.root)
	if err != nil {
		return nil, err
	}
	exports, err := ws.jsonCatalogs.ListCatalogs(ws.root)
	if err != nil {
		return nil, err
	}
	return append(refs, exports...), nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `skillglyph init`): %w", wd, err)
	}
	return root, nil
}

func resolveCatalogPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Catalog
	}
	if in == "" {
		return "", fmt.Errorf("catalog is required (use --catalog or -c)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) && ws.root != "" {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	if ws.root == "" {
		if fileExists(in) {
			return filepath.Abs(in)
		}
		return "", fmt.Errorf("catalog %q not found (no workspace; pass a file path)", in)
	}

	skillsDir := filepath.Join(ws.root, ws.cfg.Paths.SkillsDir)

	// "portfolio.yaml" or "export.json" is a file under the skills dir.
	if hasCatalogExt(in) {
		p := filepath.Join(skillsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := filepath.Join(skillsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by catalog "name" field.
	refs, err := ws.yamlCatalogs.ListCatalogs(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("catalog %q not found in %q", in, skillsDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func isJSON(s string) bool {
	return strings.ToLower(filepath.Ext(s)) == ".json"
}

func hasCatalogExt(s string) bool {
	return hasYAMLExt(s) || isJSON(s)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
