package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Icon sources in registration precedence order. Earlier sources win on identifier collisions.
const (
	SourceCustom      = "custom"
	SourceLucide      = "lucide"
	SourceSimpleIcons = "simple-icons"
	SourceAntDesign   = "ant-design"

	// SourceBuiltin marks the placeholder icon returned when the registry has no default icon.
	SourceBuiltin = "builtin"
)

// SourceOrder is the documented registration order.
var SourceOrder = []string{SourceCustom, SourceLucide, SourceSimpleIcons, SourceAntDesign}

// Icon is a renderable icon handle identified by its registry key.
// It is a comparable value; two lookups of the same key return equal values.
type Icon struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	// Slug is the library's own name for the icon (e.g. "book-open-text", "nextdotjs").
	Slug string `json:"slug"`
	// Glyph is an optional terminal glyph (Nerd Font codepoint).
	Glyph string `json:"glyph,omitempty"`
}

// DisplayName returns a human label for the icon identifier.
func (i Icon) DisplayName() string {
	return DisplayName(i.ID)
}

// Symbol returns the glyph, or a neutral bullet when the icon has none.
func (i Icon) Symbol() string {
	if i.Glyph != "" {
		return i.Glyph
	}
	return "•"
}

// IconSet is one source's contribution to the registry.
type IconSet struct {
	Source string
	// Prefix is the identifier prefix every entry must carry ("Si", "Ai").
	// Empty means entries must be capitalized instead.
	Prefix string
	Icons  []Icon
}

// reservedIdentifiers are utility exports of icon libraries that are not icons.
var reservedIdentifiers = map[string]bool{
	"Icon":             true,
	"CreateLucideIcon": true,
	"createLucideIcon": true,
}

// IsIconIdentifier reports whether id is acceptable as a registry key for a set with the given prefix.
func IsIconIdentifier(id, prefix string) bool {
	if utf8.RuneCountInString(id) <= 1 {
		return false
	}
	if reservedIdentifiers[id] {
		return false
	}
	if prefix != "" {
		return strings.HasPrefix(id, prefix) && len(id) > len(prefix)
	}
	r, _ := utf8.DecodeRuneInString(id)
	return unicode.IsUpper(r)
}

// DisplayName strips a library prefix and splits camel case: "SiNextdotjs" -> "Nextdotjs",
// "BookOpenText" -> "Book Open Text".
func DisplayName(id string) string {
	name := id
	for _, p := range []string{"Si", "Ai"} {
		rest := strings.TrimPrefix(name, p)
		if rest == name || rest == "" {
			continue
		}
		// "Sigma" is a Lucide icon, not a prefixed one.
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			name = rest
			break
		}
	}

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
