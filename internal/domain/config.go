package domain

// Config represents the profilegen configuration loaded from profilegen.yaml.
type Config struct {
	ThemesDir string
	Profile   string
	Output    string

	Defaults DefaultsConfig
	Render   RenderConfig
}

type DefaultsConfig struct {
	Theme string
}

type RenderConfig struct {
	ShowIcons bool
	ShowStats bool
}

// DefaultConfig provides sane defaults if profilegen.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		ThemesDir: "themes",
		Profile:   "profile.yaml",
		Output:    "README.md",
		Defaults: DefaultsConfig{
			Theme: "default",
		},
		Render: RenderConfig{
			ShowIcons: true,
			ShowStats: true,
		},
	}
}
