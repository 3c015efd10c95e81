package fstheme

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// splitFrontmatter separates optional YAML frontmatter from a theme body.
//
// A leading "---" line only opens frontmatter when a later line is exactly
// "---" and the lines between form a YAML mapping (or are blank). Anything
// else, such as a markdown horizontal rule, leaves content as the body.
// The body keeps its original line endings either way.
func splitFrontmatter(content string) (frontmatter, string, bool) {
	first, rest, ok := cutLine(content)
	if !ok || first != frontmatterDelimiter {
		return frontmatter{}, content, false
	}

	var meta strings.Builder
	for rest != "" {
		line, next, _ := cutLine(rest)
		if line == frontmatterDelimiter {
			fm, ok := parseFrontmatter(meta.String())
			if !ok {
				return frontmatter{}, content, false
			}
			return fm, next, true
		}
		meta.WriteString(line)
		meta.WriteByte('\n')
		rest = next
	}
	return frontmatter{}, content, false
}

// cutLine splits s after its first line. The line is returned without its
// "\n" or "\r\n"; ok is false when s is empty.
func cutLine(s string) (line, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	line, rest, found := strings.Cut(s, "\n")
	if !found {
		rest = ""
	}
	return strings.TrimSuffix(line, "\r"), rest, true
}

func parseFrontmatter(meta string) (frontmatter, bool) {
	if strings.TrimSpace(meta) == "" {
		return frontmatter{}, true
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(meta), &raw); err != nil || len(raw) == 0 {
		return frontmatter{}, false
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return frontmatter{}, false
	}
	return fm, true
}
