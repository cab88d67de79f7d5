package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caiohportella/skillglyph/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`skills\[\d+\]\.[a-z_]+`)
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "skills") || strings.Contains(oe.Op, "catalog") {
				return "Catalog not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidCatalog:
			base := fileBase(oe.Path, "catalog")
			if f := reField.FindString(err.Error()); f != "" {
				return "Invalid catalog " + base + ": " + f
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid catalog " + base + " line " + line
			}
			return "Invalid catalog " + base

		case domain.KindInvalidConfig:
			base := fileBase(oe.Path, "config")

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindEmptyRegistry:
			return "No icons available (all icon sources failed)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func fileBase(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	return filepath.Base(path)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
