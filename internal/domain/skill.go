package domain

import (
	"fmt"
	"strings"
)

// Category groups skills in the showcase.
type Category string

const (
	CategoryFrontend   Category = "frontend"
	CategoryBackend    Category = "backend"
	CategoryAIML       Category = "ai-ml"
	CategoryDevOps     Category = "devops"
	CategoryDatabase   Category = "database"
	CategoryMobile     Category = "mobile"
	CategoryCloud      Category = "cloud"
	CategoryTesting    Category = "testing"
	CategoryDesign     Category = "design"
	CategoryTools      Category = "tools"
	CategorySoftSkills Category = "soft-skills"
	CategoryOther      Category = "other"
)

// Categories lists the known categories in authoring order.
var Categories = []Category{
	CategoryFrontend, CategoryBackend, CategoryAIML, CategoryDevOps,
	CategoryDatabase, CategoryMobile, CategoryCloud, CategoryTesting,
	CategoryDesign, CategoryTools, CategorySoftSkills, CategoryOther,
}

// Proficiency is a coarse skill level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Proficiencies lists the known levels from lowest to highest.
var Proficiencies = []Proficiency{
	ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert,
}

// SkillRecord is one skill as authored in a catalog. The icon resolver only reads Name and Icon.
type SkillRecord struct {
	Name              string      `json:"name"`
	Category          Category    `json:"category,omitempty"`
	Proficiency       Proficiency `json:"proficiency,omitempty"`
	Percentage        *int        `json:"percentage,omitempty"`
	YearsOfExperience *float64    `json:"years_of_experience,omitempty"`
	// Color is a hex brand color for the badge (e.g. "#61DAFB").
	Color string `json:"color,omitempty"`
	// Icon is an explicit registry identifier chosen in the authoring tool.
	Icon string `json:"icon,omitempty"`
}

// Query returns the resolver input for this record.
func (s SkillRecord) Query() SkillQuery {
	return SkillQuery{SkillName: s.Name, ExplicitIconID: s.Icon}
}

// FieldProblem is a validation failure on one field of a record.
type FieldProblem struct {
	Field   string
	Message string
}

func (p FieldProblem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

// Problems validates the record against the catalog schema.
func (s SkillRecord) Problems() []FieldProblem {
	var out []FieldProblem

	if strings.TrimSpace(s.Name) == "" {
		out = append(out, FieldProblem{"name", "skill name is required"})
	}

	switch {
	case s.Category == "":
		out = append(out, FieldProblem{"category", "category is required"})
	case !IsKnownCategory(s.Category):
		out = append(out, FieldProblem{"category", fmt.Sprintf("unknown category %q", s.Category)})
	}

	switch {
	case s.Proficiency == "":
		out = append(out, FieldProblem{"proficiency", "proficiency is required"})
	case !IsKnownProficiency(s.Proficiency):
		out = append(out, FieldProblem{"proficiency", fmt.Sprintf("unknown proficiency %q", s.Proficiency)})
	}

	if s.Percentage != nil && (*s.Percentage < 0 || *s.Percentage > 100) {
		out = append(out, FieldProblem{"percentage", fmt.Sprintf("must be within 0..100, got %d", *s.Percentage)})
	}
	if s.YearsOfExperience != nil && *s.YearsOfExperience < 0 {
		out = append(out, FieldProblem{"years_of_experience", "must not be negative"})
	}

	return out
}

func IsKnownCategory(c Category) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

func IsKnownProficiency(p Proficiency) bool {
	for _, k := range Proficiencies {
		if k == p {
			return true
		}
	}
	return false
}

// Catalog is a named list of skill records.
type Catalog struct {
	Name   string
	Path   string
	Skills []SkillRecord
}

// CatalogRef is a lightweight reference to a catalog file on disk.
type CatalogRef struct {
	Name string
	Path string
}
