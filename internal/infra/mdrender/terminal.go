package mdrender

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/segmentio/fasthash/fnv1a"
)

// NoTTYStyle renders without ANSI colors; used for piping and tests.
const NoTTYStyle = "notty"

// Terminal renders markdown for a terminal with glamour, caching by
// content hash and width.
type Terminal struct {
	style string

	mu    sync.Mutex
	cache map[string]string
}

type TerminalOption func(*Terminal)

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
// The default detects the terminal background.
func WithStyle(style string) TerminalOption {
	return func(t *Terminal) { t.style = style }
}

func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{cache: map[string]string{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render returns the styled rendering of md wrapped at width.
// On renderer errors the raw markdown is returned.
func (t *Terminal) Render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	key := cacheKey(md, width)

	t.mu.Lock()
	cached, ok := t.cache[key]
	t.mu.Unlock()
	if ok {
		return cached
	}

	styleOpt := glamour.WithAutoStyle()
	if t.style != "" {
		styleOpt = glamour.WithStandardStyle(t.style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	out = strings.TrimRight(out, "\n ")

	t.mu.Lock()
	t.cache[key] = out
	t.mu.Unlock()
	return out
}

func cacheKey(content string, width int) string {
	return fmt.Sprintf("%016x:%d", fnv1a.HashString64(content), width)
}
