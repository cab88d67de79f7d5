package usecase

import (
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
)

// SearchIcons backs the icon picker: a case-insensitive substring filter over registry identifiers.
type SearchIcons struct {
	registry *domain.Registry
}

func NewSearchIcons(reg *domain.Registry) *SearchIcons {
	return &SearchIcons{registry: reg}
}

// Execute returns matching icons in registry order. A blank query returns nothing;
// limit <= 0 means no limit.
func (uc *SearchIcons) Execute(query string, limit int) []domain.Icon {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []domain.Icon
	for _, ic := range uc.registry.Icons() {
		if !strings.Contains(strings.ToLower(ic.ID), q) {
			continue
		}
		out = append(out, ic)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
