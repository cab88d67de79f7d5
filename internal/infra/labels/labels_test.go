package labels

import (
	"testing"
	"testing/fstest"

	"github.com/caiohportella/skillglyph/internal/domain"
)

func mustNew(t *testing.T) *Translator {
	t.Helper()
	tr, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return tr
}

func TestCategoryLabel(t *testing.T) {
	tr := mustNew(t)

	cases := []struct {
		locale string
		in     domain.Category
		want   string
	}{
		{"pt-BR", domain.CategoryDatabase, "Banco de Dados"},
		{"pt-BR", domain.CategoryAIML, "IA/ML"},
		{"pt-BR", "", "Outro"},
		{"pt-BR", "quantum", "quantum"},
		{"en-US", domain.CategoryTools, "Tools"},
		{"en-US", "", "Other"},
		{"pt", domain.CategoryTesting, "Testes"},
		{"fr-FR", domain.CategoryTesting, "Testing"},
		{"not a locale", domain.CategorySoftSkills, "Soft Skills"},
	}

	for _, c := range cases {
		if got := tr.CategoryLabel(c.locale, c.in); got != c.want {
			t.Errorf("CategoryLabel(%q, %q) = %q, want %q", c.locale, c.in, got, c.want)
		}
	}
}

func TestProficiencyLabel(t *testing.T) {
	tr := mustNew(t)

	cases := []struct {
		locale string
		in     domain.Proficiency
		want   string
	}{
		{"pt-BR", domain.ProficiencyIntermediate, "Intermediário"},
		{"pt-BR", domain.ProficiencyAdvanced, "Avançado"},
		{"pt-BR", "", ""},
		{"pt-BR", "guru", "guru"},
		{"en-US", domain.ProficiencyBeginner, "Beginner"},
	}

	for _, c := range cases {
		if got := tr.ProficiencyLabel(c.locale, c.in); got != c.want {
			t.Errorf("ProficiencyLabel(%q, %q) = %q, want %q", c.locale, c.in, got, c.want)
		}
	}
}

func TestEveryCategoryHasALabel(t *testing.T) {
	tr := mustNew(t)
	for _, loc := range tr.Locales() {
		for _, c := range domain.Categories {
			if !tr.keys["category."+string(c)] {
				t.Errorf("locale %s: no label for category %q", loc, c)
			}
		}
		for _, p := range domain.Proficiencies {
			if !tr.keys["proficiency."+string(p)] {
				t.Errorf("locale %s: no label for proficiency %q", loc, p)
			}
		}
	}
}

func TestLocales_BaseFirst(t *testing.T) {
	got := mustNew(t).Locales()
	if len(got) != 2 || got[0] != BaseLocale || got[1] != "pt-BR" {
		t.Fatalf("unexpected locales %v", got)
	}
}

func TestLoadFromFS_RequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/pt-BR/skills.yaml": {Data: []byte("locale: pt-BR\nnamespace: skills\nmessages:\n  category.other: Outro\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatalf("expected error without base locale")
	}
}

func TestLoadFromFS_LocaleMustMatchPath(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/skills.yaml": {Data: []byte("locale: pt-BR\nnamespace: skills\nmessages: {}\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatalf("expected locale/path mismatch error")
	}
}

func TestLoadFromFS_Empty(t *testing.T) {
	if _, err := LoadFromFS(fstest.MapFS{}); err == nil {
		t.Fatalf("expected error for empty filesystem")
	}
}
