package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/mkazemie/github-profile-generator/internal/app/blocks"
	"github.com/mkazemie/github-profile-generator/internal/app/handle"
	"github.com/mkazemie/github-profile-generator/internal/app/template"
	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

type GenerateReadme struct {
	themes ports.ThemeSource
	log    *slog.Logger
}

type GenerateOption func(*GenerateReadme)

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateReadme) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewGenerateReadme(ts ports.ThemeSource, opts ...GenerateOption) *GenerateReadme {
	uc := &GenerateReadme{
		themes: ts,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute fills the named theme with p and returns the finished document.
// The theme is loaded before anything else, so an unknown name fails without
// producing output. p is not modified.
func (uc *GenerateReadme) Execute(ctx context.Context, themeName string, p domain.Profile) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	theme, err := uc.themes.LoadTheme(themeName)
	if err != nil {
		uc.log.Warn("theme.load.failed", "theme", themeName, "err", err)
		return domain.Document{}, err
	}

	values, gh := Augment(p)

	out := template.Fill(theme.Body, values)
	out = handle.Patch(out, gh)
	if !p.Flag(domain.FlagShowStats, true) {
		out = blocks.StripStats(out)
	}

	uc.log.Info("readme.generated",
		"theme", theme.Name,
		"handle", gh,
		"bytes", len(out),
	)

	return domain.Document{
		Theme:   theme.Name,
		Handle:  gh,
		Format:  domain.FormatMarkdown,
		Content: out,
	}, nil
}

// Augment returns the placeholder values for p with the resolved handle and
// the derived skills and tech blocks merged in, plus the handle itself.
func Augment(p domain.Profile) (map[string]string, string) {
	c := p.Clone()

	explicit, _ := c.Field(domain.KeyGitHubUsername)
	profileURL, _ := c.Field(domain.KeyGitHubURL)
	gh := handle.Resolve(explicit, profileURL)
	c.Fields[domain.KeyGitHubUsername] = gh

	c.Fields[domain.KeySkillsBlock] = blocks.Skills(c.List(domain.KeySkills))
	c.Fields[domain.KeyTechBadges] = blocks.TechBadges(
		c.List(domain.KeyTechStack),
		c.Flag(domain.FlagShowIcons, true),
	)

	return c.Fields, gh
}
