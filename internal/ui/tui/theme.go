package tui

import "github.com/charmbracelet/lipgloss"

// styles are the browser's lipgloss styles. They are unrelated to README
// themes.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Error    lipgloss.Style
	Toast    lipgloss.Style
}

func defaultStyles() styles {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card:     card,
		Focused:  card.BorderForeground(lipgloss.Color("63")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// cards returns the list and preview card styles for the current focus.
func (s styles) cards(focusPreview bool) (list, preview lipgloss.Style) {
	if focusPreview {
		return s.Card, s.Focused
	}
	return s.Focused, s.Card
}
