package fstheme

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

//go:embed builtin/*.txt
var builtinFS embed.FS

var themeExts = []string{".txt", ".md"}

// Loader reads themes from directories, falling back to the embedded built-ins.
// Directories are searched in order; a theme file shadows any later
// directory and any built-in with the same name.
type Loader struct {
	dirs     []string
	builtins fs.FS
}

type Option func(*Loader)

// WithoutBuiltins disables the embedded themes.
func WithoutBuiltins() Option {
	return func(l *Loader) { l.builtins = nil }
}

// WithUserDir adds a fallback directory searched after the workspace one,
// e.g. $XDG_DATA_HOME/profilegen/themes.
func WithUserDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.dirs = append(l.dirs, dir)
		}
	}
}

// NewLoader creates a Loader over dir. An empty dir serves built-ins only.
func NewLoader(dir string, opts ...Option) *Loader {
	sub, _ := fs.Sub(builtinFS, "builtin")
	l := &Loader{builtins: sub}
	if strings.TrimSpace(dir) != "" {
		l.dirs = append(l.dirs, dir)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ThemeSource = (*Loader)(nil)

func (l *Loader) LoadTheme(name string) (domain.Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return domain.Theme{}, l.notFound(name)
	}

	for _, dir := range l.dirs {
		for _, ext := range themeExts {
			p := filepath.Join(dir, name+ext)
			b, err := os.ReadFile(p)
			if err == nil {
				return parseTheme(name, p, string(b))
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return domain.Theme{}, &domain.OpError{
					Op:   "fstheme.load",
					Kind: domain.KindExecution,
					Path: p,
					Err:  err,
				}
			}
		}
	}

	if l.builtins != nil {
		for _, ext := range themeExts {
			b, err := fs.ReadFile(l.builtins, name+ext)
			if err == nil {
				return parseTheme(name, "builtin:"+name, string(b))
			}
		}
	}

	return domain.Theme{}, l.notFound(name)
}

func (l *Loader) ListThemes() ([]domain.ThemeRef, error) {
	byName := map[string]domain.ThemeRef{}

	if l.builtins != nil {
		entries, err := fs.ReadDir(l.builtins, ".")
		if err != nil {
			return nil, &domain.OpError{Op: "fstheme.list", Kind: domain.KindExecution, Err: err}
		}
		for _, e := range entries {
			if ref, ok := l.refFor(e, "builtin:", true); ok {
				byName[ref.Name] = ref
			}
		}
	}

	// Lowest precedence first so earlier directories overwrite.
	for i := len(l.dirs) - 1; i >= 0; i-- {
		dir := l.dirs[i]
		entries, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "fstheme.list",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
		for _, e := range entries {
			if ref, ok := l.refFor(e, dir, false); ok {
				byName[ref.Name] = ref
			}
		}
	}

	refs := make([]domain.ThemeRef, 0, len(byName))
	for _, r := range byName {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (l *Loader) refFor(e fs.DirEntry, base string, builtin bool) (domain.ThemeRef, bool) {
	if e.IsDir() || !hasThemeExt(e.Name()) {
		return domain.ThemeRef{}, false
	}
	name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))

	var (
		b    []byte
		err  error
		path string
	)
	if builtin {
		path = base + name
		b, err = fs.ReadFile(l.builtins, e.Name())
	} else {
		path = filepath.Join(base, e.Name())
		b, err = os.ReadFile(path)
	}

	ref := domain.ThemeRef{Name: name, Path: path, Builtin: builtin}
	if err == nil {
		if fm, _, ok := splitFrontmatter(string(b)); ok {
			ref.Title = fm.Title
			ref.Description = fm.Description
		}
	}
	return ref, true
}

func (l *Loader) notFound(name string) error {
	return &domain.OpError{
		Op:   "fstheme.load",
		Kind: domain.KindNotFound,
		Path: l.primaryDir(),
		Err: &domain.ThemeNotFoundError{
			Name:        name,
			Suggestions: l.suggest(name),
		},
	}
}

func (l *Loader) primaryDir() string {
	if len(l.dirs) == 0 {
		return ""
	}
	return l.dirs[0]
}

// suggest returns up to three known theme names fuzzily matching name.
func (l *Loader) suggest(name string) []string {
	if name == "" {
		return nil
	}
	refs, err := l.ListThemes()
	if err != nil || len(refs) == 0 {
		return nil
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}

	matches := fuzzy.Find(strings.ToLower(name), names)
	out := make([]string, 0, 3)
	for _, m := range matches {
		if len(out) == 3 {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func parseTheme(name, path, content string) (domain.Theme, error) {
	fm, body, _ := splitFrontmatter(content)

	title := fm.Title
	if strings.TrimSpace(title) == "" {
		title = name
	}

	return domain.Theme{
		Name:        name,
		Title:       title,
		Description: fm.Description,
		Body:        body,
		Path:        path,
	}, nil
}

func hasThemeExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range themeExts {
		if ext == e {
			return true
		}
	}
	return false
}
