package ports

import (
	"context"

	"github.com/caiohportella/skillglyph/internal/domain"
)

// IconSource supplies one icon family to the registry.
type IconSource interface {
	Name() string
	LoadIcons(ctx context.Context) (domain.IconSet, error)
}
