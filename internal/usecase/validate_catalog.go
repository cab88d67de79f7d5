package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is one issue in a catalog. Index is the record position, or -1 for catalog-level findings.
type Finding struct {
	Severity Severity `json:"severity"`
	Index    int      `json:"index"`
	Skill    string   `json:"skill,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

type ValidationReport struct {
	Catalog  string    `json:"catalog"`
	Path     string    `json:"path"`
	Skills   int       `json:"skills"`
	Findings []Finding `json:"findings"`
}

// Count returns the number of findings with severity s.
func (r ValidationReport) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// OK reports whether the catalog passes. strict also fails on warnings.
func (r ValidationReport) OK(strict bool) bool {
	if r.Count(SeverityError) > 0 {
		return false
	}
	return !strict || r.Count(SeverityWarning) == 0
}

// ValidateCatalog checks a catalog beyond its schema: explicit icon ids must exist in
// the registry and skill names must be unique, since the showcase keys badges by name.
type ValidateCatalog struct {
	catalogs ports.SkillCatalogLoader
	resolver *domain.IconResolver
}

func NewValidateCatalog(cl ports.SkillCatalogLoader, r *domain.IconResolver) *ValidateCatalog {
	return &ValidateCatalog{catalogs: cl, resolver: r}
}

func (uc *ValidateCatalog) Execute(ctx context.Context, catalogPath string) (ValidationReport, error) {
	cat, err := uc.catalogs.LoadCatalog(catalogPath)
	if err != nil {
		return ValidationReport{}, err
	}

	rep := ValidationReport{
		Catalog:  cat.Name,
		Path:     catalogPath,
		Skills:   len(cat.Skills),
		Findings: []Finding{},
	}

	seen := map[string]int{}
	reg := uc.resolver.Registry()

	for i, s := range cat.Skills {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		for _, p := range s.Problems() {
			rep.Findings = append(rep.Findings, Finding{
				Severity: SeverityError,
				Index:    i,
				Skill:    s.Name,
				Field:    p.Field,
				Message:  p.Message,
			})
		}

		if s.Icon != "" && !reg.Has(s.Icon) {
			res := uc.resolver.ExplainQuery(s.Query())
			rep.Findings = append(rep.Findings, Finding{
				Severity: SeverityWarning,
				Index:    i,
				Skill:    s.Name,
				Field:    "icon",
				Message:  fmt.Sprintf("icon %q is not registered; falls back to %s (%s)", s.Icon, res.Icon.ID, res.Stage),
			})
		}

		key := domain.NormalizeSkillName(s.Name)
		if key != "" {
			if first, dup := seen[key]; dup {
				rep.Findings = append(rep.Findings, Finding{
					Severity: SeverityWarning,
					Index:    i,
					Skill:    s.Name,
					Field:    "name",
					Message:  fmt.Sprintf("duplicate skill name, first seen at skills[%d]", first),
				})
			} else {
				seen[key] = i
			}
		}

		if s.Icon == "" && strings.TrimSpace(s.Name) != "" {
			if res := uc.resolver.ExplainQuery(s.Query()); res.Stage == domain.StageDefault {
				rep.Findings = append(rep.Findings, Finding{
					Severity: SeverityInfo,
					Index:    i,
					Skill:    s.Name,
					Field:    "icon",
					Message:  fmt.Sprintf("no rule matches; the default icon %s is used", res.Icon.ID),
				})
			}
		}
	}

	return rep, nil
}
