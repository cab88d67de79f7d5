package ports

import "github.com/caiohportella/skillglyph/internal/domain"

// LabelTranslator renders category and proficiency values for display.
type LabelTranslator interface {
	CategoryLabel(locale string, c domain.Category) string
	ProficiencyLabel(locale string, p domain.Proficiency) string
}
