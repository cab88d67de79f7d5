package usecase

import (
	"context"
	"log/slog"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

// BuildRegistry loads every icon source in order and merges them into a registry.
type BuildRegistry struct {
	sources []ports.IconSource
	log     *slog.Logger
}

type BuildRegistryOption func(*BuildRegistry)

func WithRegistryLogger(l *slog.Logger) BuildRegistryOption {
	return func(uc *BuildRegistry) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewBuildRegistry(sources []ports.IconSource, opts ...BuildRegistryOption) *BuildRegistry {
	uc := &BuildRegistry{
		sources: sources,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute tolerates failing sources: they are logged and contribute nothing.
// Only an empty result is an error.
func (uc *BuildRegistry) Execute(ctx context.Context) (*domain.Registry, error) {
	sets := make([]domain.IconSet, 0, len(uc.sources))

	for _, src := range uc.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		set, err := src.LoadIcons(ctx)
		if err != nil {
			uc.log.Warn("registry.source.failed", "source", src.Name(), "error", err)
			sets = append(sets, domain.IconSet{Source: src.Name()})
			continue
		}
		sets = append(sets, set)
	}

	reg, err := domain.NewRegistry(sets...)
	if err != nil {
		uc.log.Error("registry.empty", "sources", len(uc.sources), "error", err)
		return nil, err
	}

	for _, st := range reg.Stats() {
		uc.log.Debug("registry.source.merged",
			"source", st.Source,
			"added", st.Added,
			"shadowed", st.Shadowed,
			"rejected", st.Rejected,
		)
	}
	if keys := uncoveredRules(reg); len(keys) > 0 {
		uc.log.Warn("registry.rules.uncovered", "count", len(keys), "keys", keys)
	}
	uc.log.Info("registry.built", "icons", reg.Len(), "sources", len(uc.sources))

	return reg, nil
}

// uncoveredRules lists match-table keys whose target and fallback are both missing
// from reg. Skills hitting those keys resolve to the default icon.
func uncoveredRules(reg *domain.Registry) []string {
	var keys []string
	for _, rules := range [][]domain.MatchRule{domain.PrimaryRules(), domain.FallbackRules()} {
		for _, r := range rules {
			if reg.Has(r.Target) || reg.Has(r.Fallback) {
				continue
			}
			keys = append(keys, r.Key)
		}
	}
	return keys
}
