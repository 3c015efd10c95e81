package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
	"github.com/mkazemie/github-profile-generator/internal/usecase/extract"
)

// ProfileInput lists the layers of a profile, lowest precedence first.
type ProfileInput struct {
	// Render seeds show_icons / show_stats from workspace config.
	Render domain.RenderConfig

	// GitHubJSON is an optional GitHub "get a user" payload.
	GitHubJSON []byte

	// ProfilePath is a YAML or JSON profile file. When RequireProfile is
	// false a missing file is skipped.
	ProfilePath    string
	RequireProfile bool

	// Overrides come from the command line and win over everything.
	Overrides domain.Profile
}

type AssembleProfile struct {
	profiles ports.ProfileLoader
	log      *slog.Logger
}

func NewAssembleProfile(pl ports.ProfileLoader, opts ...AssembleOption) *AssembleProfile {
	uc := &AssembleProfile{
		profiles: pl,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type AssembleOption func(*AssembleProfile)

func WithAssembleLogger(l *slog.Logger) AssembleOption {
	return func(uc *AssembleProfile) {
		if l != nil {
			uc.log = l
		}
	}
}

// Execute merges in.Render < in.GitHubJSON < in.ProfilePath < in.Overrides.
// The returned extract results describe the GitHub JSON import, if any.
func (uc *AssembleProfile) Execute(in ProfileInput) (domain.Profile, []domain.ExtractResult, error) {
	p := domain.NewProfile()
	p.Flags[domain.FlagShowIcons] = in.Render.ShowIcons
	p.Flags[domain.FlagShowStats] = in.Render.ShowStats

	results := []domain.ExtractResult{}
	if len(in.GitHubJSON) > 0 {
		if !json.Valid(in.GitHubJSON) {
			return domain.Profile{}, nil, &domain.OpError{
				Op:   "usecase.assemble_profile.github_json",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("github json is not valid JSON: %w", domain.ErrInvalidInput),
			}
		}

		fields, res := extract.ImportGitHubUser(in.GitHubJSON)
		results = res
		p = domain.Merge(p, domain.Profile{Fields: fields})
		uc.log.Debug("profile.github_json.imported", "fields", len(fields), "rules", len(res))
	}

	if path := strings.TrimSpace(in.ProfilePath); path != "" {
		if uc.profiles == nil {
			return domain.Profile{}, nil, errors.New("ProfileLoader is nil")
		}

		fromFile, err := uc.profiles.LoadProfile(path)
		switch {
		case err == nil:
			p = domain.Merge(p, fromFile)
			uc.log.Debug("profile.file.loaded", "path", path)
		case !in.RequireProfile && domain.IsKind(err, domain.KindNotFound):
			uc.log.Debug("profile.file.skipped", "path", path)
		default:
			uc.log.Warn("profile.file.failed", "path", path, "err", err)
			return domain.Profile{}, nil, err
		}
	}

	return domain.Merge(p, in.Overrides), results, nil
}
