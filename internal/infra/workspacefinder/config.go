package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the workspace marker and configuration file.
const ConfigFileName = "skillglyph.yaml"

// LoadConfig loads skillglyph.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	sg := y.Skillglyph
	if v := strings.TrimSpace(sg.Locale); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(sg.Defaults.Icon); v != "" {
		cfg.Defaults.Icon = v
	}
	if v := strings.TrimSpace(sg.Defaults.Catalog); v != "" {
		cfg.Defaults.Catalog = v
	}
	if v := strings.TrimSpace(sg.Paths.SkillsDir); v != "" {
		cfg.Paths.SkillsDir = v
	}
	if v := strings.TrimSpace(sg.Paths.ShowcaseDir); v != "" {
		cfg.Paths.ShowcaseDir = v
	}
	for _, d := range sg.Sources.Disabled {
		if d = strings.TrimSpace(d); d != "" {
			cfg.Sources.Disabled = append(cfg.Sources.Disabled, d)
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Skillglyph struct {
		Locale string `yaml:"locale"`

		Defaults struct {
			Icon    string `yaml:"icon"`
			Catalog string `yaml:"catalog"`
		} `yaml:"defaults"`

		Paths struct {
			SkillsDir   string `yaml:"skills_dir"`
			ShowcaseDir string `yaml:"showcase_dir"`
		} `yaml:"paths"`

		Sources struct {
			Disabled []string `yaml:"disabled"`
		} `yaml:"sources"`
	} `yaml:"skillglyph"`
}
