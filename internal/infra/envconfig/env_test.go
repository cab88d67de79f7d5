package envconfig

import (
	"testing"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestParseMap(t *testing.T) {
	e, err := ParseMap(map[string]string{
		"SKILLGLYPH_DEBUG":            "true",
		"SKILLGLYPH_LOG_CONSOLE":      "1",
		"SKILLGLYPH_WORKSPACE":        "/tmp/ws",
		"SKILLGLYPH_LOCALE":           "pt-BR",
		"SKILLGLYPH_DISABLED_SOURCES": "ant-design,custom",
	})
	if err != nil {
		t.Fatalf("ParseMap error: %v", err)
	}

	want := Env{
		Debug:           true,
		LogConsole:      true,
		Workspace:       "/tmp/ws",
		Locale:          "pt-BR",
		DisabledSources: []string{"ant-design", "custom"},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Fatalf("env mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMap_InvalidBool(t *testing.T) {
	_, err := ParseMap(map[string]string{"SKILLGLYPH_DEBUG": "maybe"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestApply(t *testing.T) {
	base := domain.DefaultConfig()
	base.Sources.Disabled = []string{"lucide"}

	got := Env{Locale: " pt-BR ", DefaultIcon: "Brain", DisabledSources: []string{"ant-design", " "}}.Apply(base)

	if got.Locale != "pt-BR" || got.Defaults.Icon != "Brain" {
		t.Fatalf("expected overrides applied, got %+v", got)
	}
	if diff := cmp.Diff([]string{"ant-design"}, got.Sources.Disabled); diff != "" {
		t.Fatalf("disabled mismatch (-want +got):\n%s", diff)
	}
	if got.Paths != base.Paths {
		t.Fatalf("expected paths untouched")
	}
}

func TestApply_EmptyKeepsConfig(t *testing.T) {
	base := domain.DefaultConfig()
	base.Locale = "pt-BR"
	if diff := cmp.Diff(base, Env{}.Apply(base)); diff != "" {
		t.Fatalf("expected no changes (-want +got):\n%s", diff)
	}
}
