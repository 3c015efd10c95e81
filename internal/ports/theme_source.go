package ports

import "github.com/mkazemie/github-profile-generator/internal/domain"

// ThemeSource resolves theme names to template text.
// LoadTheme returns an error of kind domain.KindNotFound for unknown names.
type ThemeSource interface {
	LoadTheme(name string) (domain.Theme, error)
	ListThemes() ([]domain.ThemeRef, error)
}
