package ports

import "github.com/mkazemie/github-profile-generator/internal/domain"

// ProfileLoader loads a profile from a source (e.g., a YAML or JSON file).
type ProfileLoader interface {
	LoadProfile(path string) (domain.Profile, error)
}
