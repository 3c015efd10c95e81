package yamlprofile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// Loader reads a flat YAML, JSON or TOML mapping into a domain.Profile.
//
//	name: Ada Lovelace
//	github: https://github.com/ada
//	skills: [Mathematics, Poetry]
//	tech_stack: Go, Docker
//	show_stats: false
//
// A sibling "<name>.local.yaml" override is merged on top when present.
type Loader struct {
	localSuffix string
}

type Option func(*Loader)

// WithLocalSuffix changes the override suffix (default ".local").
// An empty suffix disables the override.
func WithLocalSuffix(s string) Option {
	return func(l *Loader) { l.localSuffix = s }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{localSuffix: ".local"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ProfileLoader = (*Loader)(nil)

var listKeys = map[string]bool{
	domain.KeySkills:    true,
	domain.KeyTechStack: true,
}

var flagKeys = map[string]bool{
	domain.FlagShowIcons: true,
	domain.FlagShowStats: true,
}

func (l *Loader) LoadProfile(path string) (domain.Profile, error) {
	path = filepath.Clean(path)

	base, err := readProfile(path)
	if err != nil {
		return domain.Profile{}, err
	}

	if l.localSuffix == "" {
		return base, nil
	}

	local, err := readProfileOptional(localPath(path, l.localSuffix))
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Merge(base, local), nil
}

func localPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func readProfile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

func readProfileOptional(path string) (domain.Profile, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewProfile(), nil
		}
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.local",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	p, err := readProfile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to load local profile: %w", err)
	}
	return p, nil
}

// Parse maps raw profile bytes into a Profile. Files ending in .toml are
// decoded as TOML, anything else as YAML (which covers JSON).
func Parse(path string, b []byte) (domain.Profile, error) {
	var raw map[string]any
	if err := decode(path, b, &raw); err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	p := domain.NewProfile()

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := raw[k]
		switch {
		case listKeys[k]:
			list, err := toList(v)
			if err != nil {
				return domain.Profile{}, invalidField(path, k, err.Error())
			}
			p.Lists[k] = list

		case flagKeys[k]:
			flag, err := toBool(v)
			if err != nil {
				return domain.Profile{}, invalidField(path, k, err.Error())
			}
			p.Flags[k] = flag

		default:
			s, err := toScalar(v)
			if err != nil {
				return domain.Profile{}, invalidField(path, k, err.Error())
			}
			p.Fields[k] = s
		}
	}

	return p, nil
}

func decode(path string, b []byte, raw *map[string]any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(b, raw)
	}
	return yaml.Unmarshal(b, raw)
}

// SplitList splits a comma or newline separated string, dropping blanks.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return SplitList(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for i, it := range t {
			s, err := toScalar(it)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list or a comma separated string, got %T", v)
	}
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("expected true or false, got %q", t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected true or false, got %T", v)
	}
}

func toScalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), nil
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly), nil
		}
		return t.Format(time.RFC3339), nil
	case fmt.Stringer:
		return t.String(), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			s, err := toScalar(it)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", fmt.Errorf("nested values are not supported (%T)", v)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlprofile.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
