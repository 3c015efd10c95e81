package usecase

import (
	"github.com/mkazemie/github-profile-generator/internal/domain"
)

// fakeThemes serves themes from memory and counts loads.
type fakeThemes struct {
	themes map[string]string
	loads  int
}

func (f *fakeThemes) LoadTheme(name string) (domain.Theme, error) {
	f.loads++
	body, ok := f.themes[name]
	if !ok {
		return domain.Theme{}, &domain.OpError{
			Op:   "fake.load",
			Kind: domain.KindNotFound,
			Err:  &domain.ThemeNotFoundError{Name: name},
		}
	}
	return domain.Theme{Name: name, Body: body, Path: "builtin:" + name}, nil
}

func (f *fakeThemes) ListThemes() ([]domain.ThemeRef, error) {
	refs := make([]domain.ThemeRef, 0, len(f.themes))
	for name := range f.themes {
		refs = append(refs, domain.ThemeRef{Name: name})
	}
	return refs, nil
}

type errThemes struct{ err error }

func (e errThemes) LoadTheme(_ string) (domain.Theme, error) { return domain.Theme{}, e.err }
func (e errThemes) ListThemes() ([]domain.ThemeRef, error)   { return nil, e.err }

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	calls int
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.calls++
	f.spec = spec
	f.force = force
	return nil
}

// fakeProfiles serves profiles by path.
type fakeProfiles struct {
	profiles map[string]domain.Profile
	err      error
}

func (f *fakeProfiles) LoadProfile(path string) (domain.Profile, error) {
	if f.err != nil {
		return domain.Profile{}, f.err
	}
	p, ok := f.profiles[path]
	if !ok {
		return domain.Profile{}, &domain.OpError{
			Op:   "fake.profile",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  domain.ErrNotFound,
		}
	}
	return p, nil
}
