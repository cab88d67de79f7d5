package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caiohportella/skillglyph/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderIconRows shows a window of results that keeps the cursor visible.
func renderIconRows(t Theme, icons []domain.Icon, cursor int, selected, query string, rows int) string {
	if strings.TrimSpace(query) == "" {
		return t.Help.Render("Type to search icon identifiers.")
	}
	if len(icons) == 0 {
		return t.Help.Render("(no icons match)")
	}

	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := start + rows
	if end > len(icons) {
		end = len(icons)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		ic := icons[i]
		prefix := "  "
		if i == cursor {
			prefix = t.Cursor.Render("▸ ")
		}
		line := fmt.Sprintf("%s %-28s %s", ic.Symbol(), clampString(ic.ID, 28), t.Help.Render(ic.Source))
		if ic.ID == selected {
			line = t.Selected.Render(line + "  ✓")
		}
		b.WriteString(prefix)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(icons) > rows {
		b.WriteString(t.Help.Render(fmt.Sprintf("\n%d/%d", cursor+1, len(icons))))
	}
	return b.String()
}

func renderSelected(t Theme, ic domain.Icon, ok bool) string {
	if !ok {
		return t.Help.Render("No icon selected.")
	}
	return "Selected: " + t.Selected.Render(fmt.Sprintf("%s %s", ic.Symbol(), ic.ID)) +
		t.Help.Render(fmt.Sprintf("  (%s, %s)", ic.DisplayName(), ic.Source))
}

func renderResolution(t Theme, res domain.Resolution, explicit string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Icon:  %s %s (%s)\n", res.Icon.Symbol(), res.Icon.ID, res.Icon.Source))
	b.WriteString("Stage: " + t.Stage.Render(string(res.Stage)) + "\n")
	if res.Key != "" {
		b.WriteString(fmt.Sprintf("Key:   %q\n", res.Key))
	}
	b.WriteString("\n")
	b.WriteString(t.Help.Render(stageHint(res.Stage)))
	if explicit != "" {
		b.WriteString("\n")
		b.WriteString(t.Help.Render("Picked icon: " + explicit))
	}
	return b.String()
}

func stageHint(s domain.Stage) string {
	switch s {
	case domain.StageExplicit:
		return "The picked icon is registered, so it wins."
	case domain.StageExact:
		return "The name equals a key in the technology table."
	case domain.StagePrimary:
		return "A technology key (3+ chars) and the name contain one another."
	case domain.StageReservedToken:
		return "The name is the reserved TypeScript token."
	case domain.StageFallback:
		return "Matched the practices and soft skills table."
	case domain.StageDefault:
		return "Nothing matched; the default icon is used."
	default:
		return ""
	}
}

func renderShowcase(t Theme, sc domain.Showcase) string {
	var b strings.Builder

	b.WriteString(t.Help.Render(fmt.Sprintf("%s • %d skills • %s", sc.CatalogName, sc.SkillCount(), sc.Locale)))
	b.WriteString("\n")

	for _, g := range sc.Groups {
		b.WriteString("\n")
		b.WriteString(t.Title.Render(g.Label))
		b.WriteString("\n")
		for _, s := range g.Skills {
			b.WriteString("  ")
			b.WriteString(s.Icon.Symbol())
			b.WriteString(" ")
			b.WriteString(s.Name)
			if s.ProficiencyLabel != "" {
				b.WriteString(t.Help.Render("  " + s.ProficiencyLabel))
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
