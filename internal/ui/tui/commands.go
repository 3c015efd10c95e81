package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

const generateTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadThemes(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Themes == nil {
			return themesLoadedMsg{err: errors.New("ThemeSource is nil")}
		}
		refs, err := deps.Themes.ListThemes()
		return themesLoadedMsg{refs: refs, err: err}
	}
}

// cmdReloadThemes drops cached theme bodies so edited files are read again.
func cmdReloadThemes(deps Deps) tea.Cmd {
	if r, ok := deps.Themes.(Resetter); ok {
		r.Reset()
	}
	return cmdLoadThemes(deps)
}

func cmdLoadProfile(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Assemble == nil {
			return profileLoadedMsg{err: errors.New("ProfileAssembler is nil")}
		}

		path := deps.Config.Profile
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(deps.WorkspaceRoot, path)
		}

		p, _, err := deps.Assemble.Execute(usecase.ProfileInput{
			Render:      deps.Config.Render,
			ProfilePath: path,
		})
		return profileLoadedMsg{profile: p, err: err}
	}
}

func cmdPreview(deps Deps, p domain.Profile, theme string, width int, raw bool) tea.Cmd {
	return func() tea.Msg {
		if deps.Generate == nil {
			return previewMsg{theme: theme, err: errors.New("Generator is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		doc, err := deps.Generate.Execute(ctx, theme, p)
		if err != nil {
			return previewMsg{theme: theme, err: err}
		}

		rendered := doc.Content
		if !raw && deps.Renderer != nil {
			rendered = deps.Renderer.Render(doc.Content, width)
		}
		return previewMsg{theme: theme, doc: doc, rendered: rendered}
	}
}

func cmdWrite(deps Deps, doc domain.Document) tea.Cmd {
	return func() tea.Msg {
		if deps.NewSink == nil {
			return writeDoneMsg{err: errors.New("NewSink is nil")}
		}

		out := deps.Config.Output
		if out == "" || out == "-" {
			out = domain.DefaultConfig().Output
		}
		if !filepath.IsAbs(out) {
			out = filepath.Join(deps.WorkspaceRoot, out)
		}

		loc, err := deps.NewSink(out).WriteDocument(doc)
		return writeDoneMsg{location: loc, err: err}
	}
}
