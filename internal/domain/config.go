package domain

// Config represents the skillglyph configuration loaded from skillglyph.yaml.
type Config struct {
	Locale   string
	Defaults DefaultsConfig
	Paths    PathsConfig
	Sources  SourcesConfig
}

type DefaultsConfig struct {
	// Icon is the identifier returned when no rule matches.
	Icon string
	// Catalog is the catalog name used when none is given.
	Catalog string
}

type PathsConfig struct {
	SkillsDir   string
	ShowcaseDir string
}

type SourcesConfig struct {
	// Disabled icon sources are skipped when building the registry. Order of the rest is fixed.
	Disabled []string
}

// DefaultConfig provides sane defaults if skillglyph.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Locale: "en-US",
		Defaults: DefaultsConfig{
			Icon:    IconCode,
			Catalog: "skills",
		},
		Paths: PathsConfig{
			SkillsDir:   "skills",
			ShowcaseDir: "showcase",
		},
	}
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
