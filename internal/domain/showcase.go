package domain

import "time"

// SkillView is a skill ready to render: resolved icon plus localized labels.
type SkillView struct {
	Name              string      `json:"name"`
	Category          Category    `json:"category"`
	Proficiency       Proficiency `json:"proficiency,omitempty"`
	ProficiencyLabel  string      `json:"proficiency_label,omitempty"`
	Percentage        *int        `json:"percentage,omitempty"`
	YearsOfExperience *float64    `json:"years_of_experience,omitempty"`
	Color             string      `json:"color,omitempty"`
	Icon              Icon        `json:"icon"`
	Stage             Stage       `json:"stage"`
}

// SkillGroup is one category section of the showcase.
type SkillGroup struct {
	Category Category    `json:"category"`
	Label    string      `json:"label"`
	Skills   []SkillView `json:"skills"`
}

// Showcase is the grouped, resolved view of a catalog.
type Showcase struct {
	CatalogName string       `json:"catalog_name"`
	CatalogPath string       `json:"catalog_path"`
	Locale      string       `json:"locale"`
	GeneratedAt time.Time    `json:"generated_at"`
	Groups      []SkillGroup `json:"groups"`
}

// SkillCount returns the number of skills across groups.
func (s Showcase) SkillCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Skills)
	}
	return n
}
