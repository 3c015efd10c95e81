package tui

import "github.com/mkazemie/github-profile-generator/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type themesLoadedMsg struct {
	refs []domain.ThemeRef
	err  error
}

type profileLoadedMsg struct {
	profile domain.Profile
	err     error
}

type previewMsg struct {
	theme    string
	doc      domain.Document
	rendered string
	err      error
}

type writeDoneMsg struct {
	location string
	err      error
}
