package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()

	content := []byte("skillglyph:\n  locale: pt-BR\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected locale pt-BR, got=%s", cfg.Locale)
	}
	if cfg.Defaults.Icon != domain.IconCode {
		t.Fatalf("expected default icon=%s, got=%s", domain.IconCode, cfg.Defaults.Icon)
	}
	if cfg.Paths.SkillsDir != "skills" {
		t.Fatalf("expected skills dir=skills, got=%s", cfg.Paths.SkillsDir)
	}
	if cfg.Paths.ShowcaseDir != "showcase" {
		t.Fatalf("expected showcase dir=showcase, got=%s", cfg.Paths.ShowcaseDir)
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	root := t.TempDir()

	content := []byte(`skillglyph:
  locale: en-US
  defaults:
    icon: Brain
    catalog: cv
  paths:
    skills_dir: data/skills
    showcase_dir: out
  sources:
    disabled: [ant-design, " "]
`)
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	want := domain.Config{
		Locale:   "en-US",
		Defaults: domain.DefaultsConfig{Icon: "Brain", Catalog: "cv"},
		Paths:    domain.PathsConfig{SkillsDir: "data/skills", ShowcaseDir: "out"},
		Sources:  domain.SourcesConfig{Disabled: []string{"ant-design"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if cfg.Defaults.Icon != domain.IconCode {
		t.Fatalf("expected defaults even on error, got %+v", cfg)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("skillglyph: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
