package domain

import (
	"fmt"
	"strings"
)

// Theme is a README template identified by Name.
// Body is the raw template text with any frontmatter removed.
type Theme struct {
	Name        string
	Title       string
	Description string
	Body        string

	// Path is the file the theme came from, or "builtin:<name>" for embedded themes.
	Path string
}

// ThemeRef is a lightweight reference used for listings.
type ThemeRef struct {
	Name        string
	Title       string
	Description string
	Path        string
	Builtin     bool
}

// Format is the encoding of a Document's Content.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "md", "markdown" or "html" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", &OpError{
			Op:   "domain.parse_format",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("unknown format %q (want md or html): %w", s, ErrInvalidInput),
		}
	}
}

// Document is a fully generated README.
type Document struct {
	Theme   string
	Handle  string
	Format  Format
	Content string
}

// ThemeReport describes how a profile covers the placeholders of a theme.
type ThemeReport struct {
	Theme        string
	Placeholders []string
	Missing      []string
}

// WorkspaceSpec describes where a workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}
