package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage maps errors to one short line for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var tnf *domain.ThemeNotFoundError
	if errors.As(err, &tnf) {
		msg := "Theme " + tnf.Name + " not found"
		if len(tnf.Suggestions) > 0 {
			msg += " (did you mean " + strings.Join(tnf.Suggestions, ", ") + "?)"
		}
		return msg
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "yamlprofile"):
				return "Profile not found"
			case strings.Contains(oe.Op, "workspacefinder"):
				return "Workspace not found"
			case strings.Contains(oe.Op, "fstheme"):
				return "Theme not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid " + base

		case domain.KindExecution:
			if oe.Path != "" {
				return "Could not write " + filepath.Base(oe.Path)
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
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
