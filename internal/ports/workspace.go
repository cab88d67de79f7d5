package ports

import "github.com/caiohportella/skillglyph/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
