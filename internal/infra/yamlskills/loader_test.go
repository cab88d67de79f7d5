package yamlskills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caiohportella/skillglyph/internal/domain"
)

func TestLoader_LoadCatalog_Valid(t *testing.T) {
	l := NewLoader()

	cat, err := l.LoadCatalog(filepath.Join("testdata", "valid.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}

	if cat.Name != "portfolio" {
		t.Fatalf("expected name portfolio, got %q", cat.Name)
	}
	if len(cat.Skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(cat.Skills))
	}

	react := cat.Skills[0]
	if react.Icon != "SiReact" || react.Color != "#61DAFB" {
		t.Fatalf("unexpected react record: %+v", react)
	}
	if react.Percentage == nil || *react.Percentage != 90 {
		t.Fatalf("expected percentage 90, got %v", react.Percentage)
	}

	soft := cat.Skills[2]
	if soft.Category != domain.CategorySoftSkills || soft.Proficiency != domain.ProficiencyExpert {
		t.Fatalf("expected normalized category/proficiency, got %q/%q", soft.Category, soft.Proficiency)
	}
}

func TestLoader_LoadCatalog_InvalidFieldHasPath(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadCatalog(filepath.Join("testdata", "bad_category.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidCatalog) {
		t.Fatalf("expected invalid_catalog, got %v", err)
	}
	if !strings.Contains(err.Error(), "skills[1].category") {
		t.Fatalf("expected field path in error, got %v", err)
	}
}

func TestLoader_LoadCatalog_UnknownFieldRejected(t *testing.T) {
	_, err := NewLoader().LoadCatalog(filepath.Join("testdata", "unknown_field.yaml"))
	if !domain.IsKind(err, domain.KindInvalidCatalog) {
		t.Fatalf("expected invalid_catalog, got %v", err)
	}
}

func TestLoader_LoadCatalog_Missing(t *testing.T) {
	_, err := NewLoader().LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoader_LoadCatalog_NameDefaultsToFile(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "backend.yaml")
	if err := os.WriteFile(p, []byte("skills: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := NewLoader().LoadCatalog(p)
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}
	if cat.Name != "backend" {
		t.Fatalf("expected name from filename, got %q", cat.Name)
	}
}

func TestLoader_ListCatalogs(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "cv")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files := map[string]string{
		"b.yaml":    "name: zeta\nskills: []\n",
		"a.yml":     "skills: []\n",
		"notes.txt": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	refs, err := NewLoader(WithSkillsDir("cv")).ListCatalogs(tmp)
	if err != nil {
		t.Fatalf("ListCatalogs error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %+v", refs)
	}
	if refs[0].Name != "a" || refs[1].Name != "zeta" {
		t.Fatalf("expected sorted names [a zeta], got %q %q", refs[0].Name, refs[1].Name)
	}
}

func TestLoader_ListCatalogs_MissingDir(t *testing.T) {
	_, err := NewLoader().ListCatalogs(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
