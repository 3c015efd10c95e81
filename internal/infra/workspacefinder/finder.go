package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/config"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// Finder walks up from a directory to the first one holding profilegen.yaml.
//
// With a boundary marker set (e.g. ".git"), the walk stops after the first
// directory that contains the marker, so a workspace above the current
// repository is never picked up.
type Finder struct {
	configFile string
	boundary   string
}

type Option func(*Finder)

// WithConfigFile changes the file that marks a workspace root.
func WithConfigFile(name string) Option {
	return func(f *Finder) {
		if name != "" {
			f.configFile = name
		}
	}
}

// WithBoundary stops the search at the first directory containing marker.
func WithBoundary(marker string) Option {
	return func(f *Finder) { f.boundary = marker }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{configFile: config.FileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.find",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("start directory is empty"),
		}
	}

	dir, err := startFrom(startDir)
	if err != nil {
		return "", err
	}

	for {
		if exists(filepath.Join(dir, f.configFile)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || (f.boundary != "" && exists(filepath.Join(dir, f.boundary))) {
			return "", &domain.OpError{
				Op:   "workspacefinder.find",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		dir = parent
	}
}

// startFrom makes p absolute; a file path starts from its directory.
func startFrom(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.find",
			Kind: domain.KindExecution,
			Path: p,
			Err:  err,
		}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
