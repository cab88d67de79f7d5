// Package jsonskills reads skill records from JSON content exports.
package jsonskills

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

// DefaultSelector selects every element of a top-level array.
const DefaultSelector = "$[*]"

type Loader struct {
	selector   string
	exportsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{selector: DefaultSelector, exportsDir: "skills"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithSelector sets the JSONPath expression that yields the skill records.
func WithSelector(expr string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(expr) != "" {
			l.selector = strings.TrimSpace(expr)
		}
	}
}

func WithExportsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.exportsDir = dir
		}
	}
}

var _ ports.SkillCatalogLoader = (*Loader)(nil)

// LoadCatalog reads an exported document and maps the selected records.
// Records without a name are skipped, as the showcase never renders them.
func (l *Loader) LoadCatalog(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, &domain.OpError{
			Op:   "jsonskills.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Catalog{}, invalid(path, fmt.Errorf("not valid JSON: %v", err))
	}

	val, err := jsonpath.Get(l.selector, doc)
	if err != nil {
		return domain.Catalog{}, invalid(path, fmt.Errorf("selector %s: %v", l.selector, err))
	}

	var items []any
	switch v := val.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	case nil:
	default:
		return domain.Catalog{}, invalid(path, fmt.Errorf("selector %s: expected objects, got %T", l.selector, val))
	}

	cat := domain.Catalog{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:   path,
		Skills: make([]domain.SkillRecord, 0, len(items)),
	}

	for i, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			return domain.Catalog{}, invalid(path, fmt.Errorf("record %d: expected object, got %T", i, it))
		}
		rec, ok := mapRecord(obj)
		if !ok {
			continue
		}
		cat.Skills = append(cat.Skills, rec)
	}

	return cat, nil
}

func (l *Loader) ListCatalogs(root string) ([]domain.CatalogRef, error) {
	dir := filepath.Join(root, l.exportsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "jsonskills.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.CatalogRef
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		refs = append(refs, domain.CatalogRef{
			Name: strings.TrimSuffix(e.Name(), ".json"),
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func mapRecord(obj map[string]any) (domain.SkillRecord, bool) {
	name := strings.TrimSpace(str(obj["name"]))
	if name == "" {
		return domain.SkillRecord{}, false
	}

	rec := domain.SkillRecord{
		Name:        name,
		Category:    domain.Category(str(obj["category"])),
		Proficiency: domain.Proficiency(str(obj["proficiency"])),
		Icon:        strings.TrimSpace(str(obj["icon"])),
		Color:       color(obj["color"]),
	}

	if f, ok := obj["percentage"].(float64); ok {
		p := int(math.Round(f))
		rec.Percentage = &p
	}
	if f, ok := obj["yearsOfExperience"].(float64); ok {
		rec.YearsOfExperience = &f
	}

	return rec, true
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// color accepts a plain hex string or a color-picker object carrying a "hex" key.
func color(v any) string {
	switch c := v.(type) {
	case string:
		return strings.TrimSpace(c)
	case map[string]any:
		return strings.TrimSpace(str(c["hex"]))
	default:
		return ""
	}
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "jsonskills.load",
		Kind: domain.KindInvalidCatalog,
		Path: path,
		Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidCatalog),
	}
}
