// Package blocks builds the derived markdown blocks injected into a profile
// before a theme is filled.
package blocks

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	badgeBaseURL = "https://img.shields.io/badge/"
	badgeColor   = "informational"
	badgeStyle   = "flat-square"
)

// Skills renders one "- entry" line per non-empty entry.
// An empty list still yields a single "-" so the block is never blank.
func Skills(entries []string) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		lines = append(lines, "- "+e)
	}
	if len(lines) == 0 {
		return "-"
	}
	return strings.Join(lines, "\n")
}

// TechBadges renders one shields.io badge per non-empty entry, newline separated.
// Unlike Skills, an empty list yields "".
func TechBadges(entries []string, withIcons bool) string {
	frags := make([]string, 0, len(entries))
	for _, e := range entries {
		label := strings.TrimSpace(e)
		if label == "" {
			continue
		}
		frags = append(frags, Badge(label, withIcons))
	}
	return strings.Join(frags, "\n")
}

// Badge renders a single badge fragment for label.
func Badge(label string, withIcons bool) string {
	src := fmt.Sprintf("%s%s-%s?style=%s", badgeBaseURL, escapeLabel(label), badgeColor, badgeStyle)
	if withIcons {
		if slug, ok := IconFor(label); ok {
			src += "&logo=" + url.QueryEscape(slug) + "&logoColor=white"
		}
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" />`, src, escapeAttr(label))
}

// escapeLabel applies the shields.io dash/underscore doubling before path escaping.
func escapeLabel(label string) string {
	label = strings.ReplaceAll(label, "-", "--")
	label = strings.ReplaceAll(label, "_", "__")
	return url.PathEscape(label)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;", `>`, "&gt;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
