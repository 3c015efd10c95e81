package ports

import "github.com/mkazemie/github-profile-generator/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
