package tui

import (
	"context"
	"log/slog"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

// Generator produces a README for a theme and profile.
type Generator interface {
	Execute(ctx context.Context, themeName string, p domain.Profile) (domain.Document, error)
}

// ProfileAssembler builds the layered profile shown in previews.
type ProfileAssembler interface {
	Execute(in usecase.ProfileInput) (domain.Profile, []domain.ExtractResult, error)
}

// Renderer styles markdown for the terminal.
type Renderer interface {
	Render(md string, width int) string
}

// Resetter is implemented by theme sources that cache theme bodies.
type Resetter interface {
	Reset()
}

type Deps struct {
	WorkspaceRoot  string
	WorkspaceFound bool
	Config         domain.Config

	Themes   ports.ThemeSource
	Generate Generator
	Assemble ProfileAssembler
	Renderer Renderer

	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	NewSink              func(path string) ports.DocumentSink

	Logger *slog.Logger
	Debug  bool
}
