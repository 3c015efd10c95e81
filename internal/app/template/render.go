package template

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// blank is what a missing or empty value renders as.
const blank = " "

// Fill replaces {{name}} placeholders with values in a single pass.
// Missing, empty and unknown names render as a single space; substituted
// values are never rescanned.
func Fill(input string, values map[string]string) string {
	if !strings.Contains(input, "{{") {
		return input
	}

	return placeholderRe.ReplaceAllStringFunc(input, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		v := strings.TrimSpace(values[key])
		if v == "" {
			return blank
		}
		return v
	})
}

// Placeholders returns the distinct identifiers used in input, in order of first appearance.
func Placeholders(input string) []string {
	matches := placeholderRe.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		out = append(out, m[1])
	}
	return out
}
