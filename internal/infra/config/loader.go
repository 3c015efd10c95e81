package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

// FileName is the workspace config file looked up at the workspace root.
const FileName = "profilegen.yaml"

// EnvPrefix prefixes every environment override, e.g. PROFILEGEN_DEFAULTS_THEME.
const EnvPrefix = "PROFILEGEN"

const section = "profilegen"

// settings lists every supported key below the profilegen section.
var settings = []string{
	"themes_dir",
	"profile",
	"output",
	"defaults.theme",
	"render.show_icons",
	"render.show_stats",
}

// Load reads profilegen.yaml from root on top of domain.DefaultConfig.
// Environment overrides apply even when the file is missing; in that case the
// returned config is still usable and the error is of kind KindNotFound.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	v := viper.New()
	setDefaults(v, domain.DefaultConfig())
	bindEnv(v)

	var loadErr error
	if _, err := os.Stat(path); err != nil {
		loadErr = &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	} else {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, loadErr
}

// LoadOptional behaves like Load but treats a missing file as defaults.
func LoadOptional(root string) (domain.Config, error) {
	cfg, err := Load(root)
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		return cfg, nil
	}
	return cfg, err
}

func setDefaults(v *viper.Viper, def domain.Config) {
	v.SetDefault(key("themes_dir"), def.ThemesDir)
	v.SetDefault(key("profile"), def.Profile)
	v.SetDefault(key("output"), def.Output)
	v.SetDefault(key("defaults.theme"), def.Defaults.Theme)
	v.SetDefault(key("render.show_icons"), def.Render.ShowIcons)
	v.SetDefault(key("render.show_stats"), def.Render.ShowStats)
}

// bindEnv maps profilegen.defaults.theme to PROFILEGEN_DEFAULTS_THEME rather
// than viper's PROFILEGEN_PROFILEGEN_DEFAULTS_THEME.
func bindEnv(v *viper.Viper) {
	for _, s := range settings {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(s, ".", "_"))
		_ = v.BindEnv(key(s), env)
	}
}

func fromViper(v *viper.Viper) (domain.Config, error) {
	cfg := domain.Config{
		ThemesDir: strings.TrimSpace(v.GetString(key("themes_dir"))),
		Profile:   strings.TrimSpace(v.GetString(key("profile"))),
		Output:    strings.TrimSpace(v.GetString(key("output"))),
	}
	cfg.Defaults.Theme = strings.TrimSpace(v.GetString(key("defaults.theme")))
	cfg.Render.ShowIcons = v.GetBool(key("render.show_icons"))
	cfg.Render.ShowStats = v.GetBool(key("render.show_stats"))

	def := domain.DefaultConfig()
	if cfg.ThemesDir == "" {
		cfg.ThemesDir = def.ThemesDir
	}
	if cfg.Profile == "" {
		cfg.Profile = def.Profile
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.Defaults.Theme == "" {
		cfg.Defaults.Theme = def.Defaults.Theme
	}

	if strings.ContainsAny(cfg.Defaults.Theme, `/\`) {
		return cfg, errors.New("defaults.theme must be a theme name, not a path")
	}
	return cfg, nil
}

func key(s string) string {
	return section + "." + s
}
