package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/config"
	"github.com/mkazemie/github-profile-generator/internal/infra/fstheme"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/infra/workspacefinder"
	"github.com/mkazemie/github-profile-generator/internal/infra/yamlprofile"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// workspaceCtx wires the adapters for one workspace. Outside a workspace
// root is the working directory, found is false and cfg holds the defaults.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	themes   ports.ThemeSource
	profiles ports.ProfileLoader
}

func loadWorkspace(workspaceFlag, themesDirFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOptional(root)
	if err != nil {
		return nil, err
	}

	themesDir := cfg.ThemesDir
	if t := strings.TrimSpace(themesDirFlag); t != "" {
		themesDir = t
	}

	return &workspaceCtx{
		root:  root,
		found: found,
		cfg:   cfg,
		themes: fstheme.NewCache(fstheme.NewLoader(
			resolveIn(root, themesDir),
			fstheme.WithUserDir(userThemesDir()),
		)),
		profiles: yamlprofile.NewLoader(),
	}, nil
}

// resolveWorkspaceRoot returns the explicit workspace, the workspace found
// upward from the working directory, or the working directory itself.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, config.FileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := newFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

// newFinder does not search past the enclosing git repository.
func newFinder() *workspacefinder.Finder {
	return workspacefinder.NewFinder(workspacefinder.WithBoundary(".git"))
}

// resolveIn makes p absolute relative to root. "-" is kept as is.
func resolveIn(root, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// userThemesDir holds themes shared by every workspace of the user.
var userThemesDir = func() string {
	return filepath.Join(xdg.DataHome, "profilegen", "themes")
}

// stateDir is where generation history is kept for a workspace.
func stateDir(root string) string {
	return filepath.Join(root, logger.StateDir)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
