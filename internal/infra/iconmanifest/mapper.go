package iconmanifest

import (
	"fmt"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
)

// mapManifest checks the manifest header and converts it to an icon set.
// Entry-level qualification is left to the registry so rejected entries are counted there.
func mapManifest(path, want string, m yamlManifest) (domain.IconSet, error) {
	src := strings.TrimSpace(m.Source)
	if src == "" {
		return domain.IconSet{}, invalidField(path, "source", "source is required")
	}
	if want != "" && src != want {
		return domain.IconSet{}, invalidField(path, "source", fmt.Sprintf("expected %q, got %q", want, src))
	}

	set := domain.IconSet{
		Source: src,
		Prefix: strings.TrimSpace(m.Prefix),
		Icons:  make([]domain.Icon, 0, len(m.Icons)),
	}

	for i, ic := range m.Icons {
		if strings.TrimSpace(ic.ID) == "" {
			return domain.IconSet{}, invalidField(path, fmt.Sprintf("icons[%d].id", i), "icon id is required")
		}
		set.Icons = append(set.Icons, domain.Icon{
			ID:     strings.TrimSpace(ic.ID),
			Source: src,
			Slug:   strings.TrimSpace(ic.Slug),
			Glyph:  ic.Glyph,
		})
	}

	return set, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "iconmanifest.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
