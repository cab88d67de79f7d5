package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/caiohportella/skillglyph/internal/domain"
)

type fakeCatalogLoader struct {
	cat domain.Catalog
	err error
}

func (f fakeCatalogLoader) LoadCatalog(path string) (domain.Catalog, error) {
	if f.err != nil {
		return domain.Catalog{}, f.err
	}
	c := f.cat
	c.Path = path
	return c, nil
}

func (f fakeCatalogLoader) ListCatalogs(_ string) ([]domain.CatalogRef, error) {
	return nil, nil
}

// fakeLabels prefixes the locale so tests can see it was passed through.
type fakeLabels struct{}

func (fakeLabels) CategoryLabel(locale string, c domain.Category) string {
	return locale + ":" + string(c)
}

func (fakeLabels) ProficiencyLabel(locale string, p domain.Proficiency) string {
	if p == "" {
		return ""
	}
	return locale + ":" + string(p)
}

type fakeStore struct {
	saved []domain.Showcase
	err   error
}

func (s *fakeStore) SaveShowcase(sc domain.Showcase) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, sc)
	return "showcase-1", nil
}

type fakeSource struct {
	name string
	set  domain.IconSet
	err  error
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) LoadIcons(_ context.Context) (domain.IconSet, error) {
	if f.err != nil {
		return domain.IconSet{}, f.err
	}
	return f.set, nil
}

var errBoom = errors.New("boom")

func testSets() []domain.IconSet {
	return []domain.IconSet{
		{Source: domain.SourceLucide, Icons: []domain.Icon{
			{ID: "Code", Slug: "code"},
			{ID: "Database", Slug: "database"},
			{ID: "Brain", Slug: "brain"},
			{ID: "BookOpenText", Slug: "book-open-text"},
		}},
		{Source: domain.SourceSimpleIcons, Prefix: "Si", Icons: []domain.Icon{
			{ID: "SiReact", Slug: "react"},
			{ID: "SiGo", Slug: "go"},
			{ID: "SiDocker", Slug: "docker"},
			{ID: "SiNextdotjs", Slug: "nextdotjs"},
			{ID: "SiApachekafka", Slug: "apachekafka"},
		}},
	}
}

func testResolver(t *testing.T) *domain.IconResolver {
	t.Helper()
	reg, err := domain.NewRegistry(testSets()...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return domain.NewIconResolver(reg)
}
