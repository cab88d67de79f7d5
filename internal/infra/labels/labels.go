// Package labels translates skill categories and proficiency levels for display.
package labels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is used when a requested locale has no close match.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var localesFS embed.FS

type localeFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Translator resolves labels from an x/text catalog.
type Translator struct {
	builder *catalog.Builder
	matcher language.Matcher
	tags    []language.Tag
	// keys tracks which message keys exist so unknown values can be returned unchanged.
	keys map[string]bool
}

var _ ports.LabelTranslator = (*Translator)(nil)

// New loads the embedded locale catalogs.
func New() (*Translator, error) {
	return LoadFromFS(localesFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Translator, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	t := &Translator{
		builder: catalog.NewBuilder(catalog.Fallback(base)),
		keys:    map[string]bool{},
	}

	seen := map[language.Tag]bool{}
	for _, p := range paths {
		tag, err := t.addFile(fsys, p)
		if err != nil {
			return nil, err
		}
		if !seen[tag] {
			seen[tag] = true
			t.tags = append(t.tags, tag)
		}
	}

	if !seen[base] {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The base locale goes first so the matcher falls back to it.
	sort.SliceStable(t.tags, func(i, j int) bool { return t.tags[i] == base && t.tags[j] != base })
	t.matcher = language.NewMatcher(t.tags)

	return t, nil
}

func (t *Translator) addFile(fsys fs.FS, p string) (language.Tag, error) {
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return language.Und, fmt.Errorf("read catalog %s: %w", p, err)
	}

	var f localeFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return language.Und, fmt.Errorf("parse catalog %s: %w", p, err)
	}

	fromPath := path.Base(path.Dir(p))
	if strings.TrimSpace(f.Locale) != fromPath {
		return language.Und, fmt.Errorf("catalog %s: locale %q must match path locale %q", p, f.Locale, fromPath)
	}

	tag, err := language.Parse(fromPath)
	if err != nil {
		return language.Und, fmt.Errorf("catalog %s: %w", p, err)
	}

	for key, msg := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return language.Und, fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if err := t.builder.SetString(tag, key, msg); err != nil {
			return language.Und, fmt.Errorf("catalog %s: key %q: %w", p, key, err)
		}
		t.keys[key] = true
	}

	return tag, nil
}

// Locales returns the available locales, base locale first.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.tags))
	for _, tag := range t.tags {
		out = append(out, tag.String())
	}
	return out
}

// Match returns the closest available locale for a requested one.
func (t *Translator) Match(locale string) language.Tag {
	want, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return t.tags[0]
	}
	_, idx, _ := t.matcher.Match(want)
	return t.tags[idx]
}

// CategoryLabel returns the label for c. Empty becomes the "other" label; unknown values are returned as is.
func (t *Translator) CategoryLabel(locale string, c domain.Category) string {
	if c == "" {
		c = domain.CategoryOther
	}
	return t.lookup(locale, "category."+string(c), string(c))
}

// ProficiencyLabel returns the label for p. Empty stays empty; unknown values are returned as is.
func (t *Translator) ProficiencyLabel(locale string, p domain.Proficiency) string {
	if p == "" {
		return ""
	}
	return t.lookup(locale, "proficiency."+string(p), string(p))
}

func (t *Translator) lookup(locale, key, raw string) string {
	if !t.keys[key] {
		return raw
	}
	pr := message.NewPrinter(t.Match(locale), message.Catalog(t.builder))
	return pr.Sprintf(key)
}
