package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mkazemie/github-profile-generator/internal/app/template"
	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

type CheckTheme struct {
	themes ports.ThemeSource
}

// maxParallelChecks bounds theme loads in ExecuteAll.
const maxParallelChecks = 4

func NewCheckTheme(ts ports.ThemeSource) *CheckTheme {
	return &CheckTheme{themes: ts}
}

// Execute reports which placeholders of a theme p would leave blank.
// Blank placeholders are not errors; generation would render them as a space.
func (uc *CheckTheme) Execute(ctx context.Context, themeName string, p domain.Profile) (domain.ThemeReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.ThemeReport{}, err
	}

	theme, err := uc.themes.LoadTheme(themeName)
	if err != nil {
		return domain.ThemeReport{}, err
	}

	values, _ := Augment(p)

	report := domain.ThemeReport{
		Theme:        theme.Name,
		Placeholders: template.Placeholders(theme.Body),
		Missing:      []string{},
	}
	for _, name := range report.Placeholders {
		if strings.TrimSpace(values[name]) == "" {
			report.Missing = append(report.Missing, name)
		}
	}
	return report, nil
}

// ExecuteAll checks every named theme against p concurrently. Reports keep
// the order of names; the first failing theme cancels the rest.
func (uc *CheckTheme) ExecuteAll(ctx context.Context, names []string, p domain.Profile) ([]domain.ThemeReport, error) {
	reports := make([]domain.ThemeReport, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)
	for i, name := range names {
		g.Go(func() error {
			r, err := uc.Execute(gctx, name, p)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
