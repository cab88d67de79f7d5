package showcasestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

const defaultShowcaseDir = "showcase"

type JSONStore struct {
	rootDir     string
	showcaseDir string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: showcase/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ShowcaseDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultShowcaseDir
	}

	s := &JSONStore{
		rootDir:     root,
		showcaseDir: dir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ShowcaseStore = (*JSONStore)(nil)

func (s *JSONStore) SaveShowcase(sc domain.Showcase) (string, error) {
	dir := filepath.Join(s.rootDir, s.showcaseDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "showcasestore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := sc.GeneratedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()
	sc.GeneratedAt = ts

	namePart := sc.CatalogName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(sc.CatalogPath), filepath.Ext(sc.CatalogPath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "showcase"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)

	b, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "showcasestore.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	id, path, err := reserve(dir, base)
	if err != nil {
		return "", &domain.OpError{
			Op:   "showcasestore.reserve",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "showcasestore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "showcasestore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), sc)
	}

	return id, nil
}

// reserve creates an empty file named base.json, or base_N.json when taken.
func reserve(dir, base string) (id, path string, err error) {
	for n := 1; n < 1000; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		path = filepath.Join(dir, id+".json")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			return id, path, f.Close()
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
	}
	return "", "", fmt.Errorf("no free filename for %s", base)
}

func (s *JSONStore) appendIndex(dir, id, filename string, sc domain.Showcase) error {
	type idx struct {
		ID          string    `json:"id"`
		File        string    `json:"file"`
		Catalog     string    `json:"catalog"`
		Locale      string    `json:"locale"`
		Skills      int       `json:"skills"`
		GeneratedAt time.Time `json:"generated_at"`
	}
	line, err := json.Marshal(idx{
		ID:          id,
		File:        filename,
		Catalog:     sc.CatalogName,
		Locale:      sc.Locale,
		Skills:      sc.SkillCount(),
		GeneratedAt: sc.GeneratedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
