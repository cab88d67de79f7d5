package tui

import (
	"log/slog"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Resolver *domain.IconResolver
	Labels   ports.LabelTranslator
	Locale   string
	// StartDir is where workspace discovery and init start; defaults to the working directory.
	StartDir string

	Logger *slog.Logger
	Debug  bool
}
