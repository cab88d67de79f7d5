package iconmanifest

type yamlManifest struct {
	Source string     `yaml:"source"`
	Prefix string     `yaml:"prefix"`
	Icons  []yamlIcon `yaml:"icons"`
}

type yamlIcon struct {
	ID    string `yaml:"id"`
	Slug  string `yaml:"slug"`
	Glyph string `yaml:"glyph"`
}
