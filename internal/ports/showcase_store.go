package ports

import "github.com/caiohportella/skillglyph/internal/domain"

// ShowcaseStore persists rendered showcases so they can be diffed or published later.
type ShowcaseStore interface {
	SaveShowcase(s domain.Showcase) (id string, err error)
}
