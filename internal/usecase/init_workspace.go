package usecase

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// InitWorkspace scaffolds profilegen.yaml, a starter profile and a themes
// directory under a root.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

type InitOption func(*InitWorkspace)

func WithInitLogger(l *slog.Logger) InitOption {
	return func(uc *InitWorkspace) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...InitOption) *InitWorkspace {
	uc := &InitWorkspace{
		initializer: initializer,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute scaffolds root. Existing files are kept unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidInput,
			Err:  errors.Join(domain.ErrInvalidInput, errors.New("workspace root is empty")),
		}
	}
	root = filepath.Clean(root)

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		uc.log.Warn("workspace.init.failed", "root", root, "err", err)
		return err
	}

	uc.log.Info("workspace.initialized", "root", root, "force", force)
	return nil
}
