// Package iconmanifest ships the icon families as embedded YAML manifests.
package iconmanifest

import (
	"context"
	"embed"
	"io/fs"
	"path"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
	"gopkg.in/yaml.v3"
)

//go:embed manifests/*.yaml
var manifestsFS embed.FS

// Source reads one manifest file from a filesystem.
type Source struct {
	name string
	fsys fs.FS
	file string
}

var _ ports.IconSource = (*Source)(nil)

// NewSource returns a source reading file from fsys. name must match the manifest's source field.
func NewSource(name string, fsys fs.FS, file string) *Source {
	return &Source{name: name, fsys: fsys, file: file}
}

// Embedded returns the built-in source with the given name.
func Embedded(name string) *Source {
	return NewSource(name, manifestsFS, path.Join("manifests", name+".yaml"))
}

// Sources returns the built-in sources in registry precedence order, minus disabled ones.
func Sources(disabled ...string) []ports.IconSource {
	skip := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		skip[d] = true
	}

	out := make([]ports.IconSource, 0, len(domain.SourceOrder))
	for _, name := range domain.SourceOrder {
		if skip[name] {
			continue
		}
		out = append(out, Embedded(name))
	}
	return out
}

func (s *Source) Name() string { return s.name }

func (s *Source) LoadIcons(ctx context.Context) (domain.IconSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.IconSet{}, err
	}

	b, err := fs.ReadFile(s.fsys, s.file)
	if err != nil {
		return domain.IconSet{}, &domain.OpError{
			Op:   "iconmanifest.load",
			Kind: domain.KindNotFound,
			Path: s.file,
			Err:  err,
		}
	}

	var m yamlManifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return domain.IconSet{}, &domain.OpError{
			Op:   "iconmanifest.load",
			Kind: domain.KindInvalidConfig,
			Path: s.file,
			Err:  err,
		}
	}

	return mapManifest(s.file, s.name, m)
}
