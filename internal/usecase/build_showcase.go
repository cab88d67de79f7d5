package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

// BuildShowcase turns a catalog into category groups with resolved icons and localized labels.
type BuildShowcase struct {
	catalogs ports.SkillCatalogLoader
	resolver *domain.IconResolver
	labels   ports.LabelTranslator
	store    ports.ShowcaseStore
	now      func() time.Time
}

type ShowcaseOption func(*BuildShowcase)

// WithShowcaseStore persists each built showcase. Nil disables saving.
func WithShowcaseStore(s ports.ShowcaseStore) ShowcaseOption {
	return func(uc *BuildShowcase) { uc.store = s }
}

func WithShowcaseClock(now func() time.Time) ShowcaseOption {
	return func(uc *BuildShowcase) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewBuildShowcase(cl ports.SkillCatalogLoader, r *domain.IconResolver, lt ports.LabelTranslator, opts ...ShowcaseOption) *BuildShowcase {
	uc := &BuildShowcase{
		catalogs: cl,
		resolver: r,
		labels:   lt,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the showcase and, when a store is configured, the saved id.
func (uc *BuildShowcase) Execute(ctx context.Context, catalogPath, locale string) (domain.Showcase, string, error) {
	cat, err := uc.catalogs.LoadCatalog(catalogPath)
	if err != nil {
		return domain.Showcase{}, "", err
	}
	if err := ctx.Err(); err != nil {
		return domain.Showcase{}, "", err
	}

	sc := domain.Showcase{
		CatalogName: cat.Name,
		CatalogPath: catalogPath,
		Locale:      locale,
		GeneratedAt: uc.now().UTC(),
		Groups:      GroupSkills(cat.Skills, uc.resolver, uc.labels, locale),
	}

	if uc.store == nil {
		return sc, "", nil
	}

	id, err := uc.store.SaveShowcase(sc)
	if err != nil {
		return sc, "", err
	}
	return sc, id, nil
}

// GroupSkills drops nameless records, orders by category and groups in first-seen order.
// Records without a category land in "other".
func GroupSkills(skills []domain.SkillRecord, r *domain.IconResolver, lt ports.LabelTranslator, locale string) []domain.SkillGroup {
	kept := make([]domain.SkillRecord, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if s.Category == "" {
			s.Category = domain.CategoryOther
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Category < kept[j].Category })

	var groups []domain.SkillGroup
	index := map[domain.Category]int{}

	for _, s := range kept {
		res := r.ExplainQuery(s.Query())
		view := domain.SkillView{
			Name:              s.Name,
			Category:          s.Category,
			Proficiency:       s.Proficiency,
			ProficiencyLabel:  lt.ProficiencyLabel(locale, s.Proficiency),
			Percentage:        s.Percentage,
			YearsOfExperience: s.YearsOfExperience,
			Color:             s.Color,
			Icon:              res.Icon,
			Stage:             res.Stage,
		}

		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, domain.SkillGroup{
				Category: s.Category,
				Label:    lt.CategoryLabel(locale, s.Category),
			})
		}
		groups[i].Skills = append(groups[i].Skills, view)
	}

	return groups
}
