package blocks

import "strings"

const (
	StatsStart = "<!-- stats:start -->"
	StatsEnd   = "<!-- stats:end -->"
)

// StripStats removes every StatsStart...StatsEnd block, markers included.
// A start marker without a matching end leaves the rest of doc as is.
func StripStats(doc string) string {
	var b strings.Builder
	rest := doc
	for {
		start := strings.Index(rest, StatsStart)
		if start == -1 {
			b.WriteString(rest)
			return b.String()
		}

		end := strings.Index(rest[start:], StatsEnd)
		if end == -1 {
			b.WriteString(rest)
			return b.String()
		}

		b.WriteString(rest[:start])
		rest = rest[start+end+len(StatsEnd):]
	}
}
