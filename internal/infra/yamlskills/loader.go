package yamlskills

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	skillsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{skillsDir: "skills"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSkillsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.skillsDir = dir
		}
	}
}

var _ ports.SkillCatalogLoader = (*Loader)(nil)

func (l *Loader) LoadCatalog(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, &domain.OpError{
			Op:   "yamlskills.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlCatalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil && !errors.Is(err, io.EOF) {
		return domain.Catalog{}, &domain.OpError{
			Op:   "yamlskills.load",
			Kind: domain.KindInvalidCatalog,
			Path: path,
			Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidCatalog),
		}
	}

	return mapAndValidate(path, yc)
}

func (l *Loader) ListCatalogs(root string) ([]domain.CatalogRef, error) {
	dir := filepath.Join(root, l.skillsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlskills.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.CatalogRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readCatalogName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.CatalogRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readCatalogName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlCatalog struct {
	Name   string      `yaml:"name"`
	Skills []yamlSkill `yaml:"skills"`
}

type yamlSkill struct {
	Name              string   `yaml:"name"`
	Category          string   `yaml:"category"`
	Proficiency       string   `yaml:"proficiency"`
	Percentage        *int     `yaml:"percentage"`
	YearsOfExperience *float64 `yaml:"years_of_experience"`
	Color             string   `yaml:"color"`
	Icon              string   `yaml:"icon"`
}

func mapAndValidate(path string, yc yamlCatalog) (domain.Catalog, error) {
	name := strings.TrimSpace(yc.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	cat := domain.Catalog{
		Name:   name,
		Path:   path,
		Skills: make([]domain.SkillRecord, 0, len(yc.Skills)),
	}

	for i, s := range yc.Skills {
		rec := domain.SkillRecord{
			Name:              strings.TrimSpace(s.Name),
			Category:          domain.Category(strings.ToLower(strings.TrimSpace(s.Category))),
			Proficiency:       domain.Proficiency(strings.ToLower(strings.TrimSpace(s.Proficiency))),
			Percentage:        s.Percentage,
			YearsOfExperience: s.YearsOfExperience,
			Color:             strings.TrimSpace(s.Color),
			Icon:              strings.TrimSpace(s.Icon),
		}

		if probs := rec.Problems(); len(probs) > 0 {
			p := probs[0]
			return domain.Catalog{}, invalidField(path, fmt.Sprintf("skills[%d].%s", i, p.Field), p.Message)
		}

		cat.Skills = append(cat.Skills, rec)
	}

	return cat, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlskills.validate",
		Kind: domain.KindInvalidCatalog,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidCatalog),
	}
}
