package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/docstore"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/infra/mdrender"
	"github.com/mkazemie/github-profile-generator/internal/infra/yamlprofile"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

type generateOpts struct {
	theme      string
	profile    string
	sets       []string
	skills     []string
	techs      []string
	githubJSON string
	out        string
	format     formatFlag
	preview    bool
	noStats    bool
	noIcons    bool
	themesDir  string
}

func generateCmd(workspace *string) *cobra.Command {
	o := generateOpts{format: formatFlag(domain.FormatMarkdown)}

	c := &cobra.Command{
		Use:   "generate",
		Short: "Fill a theme with your profile and write the README",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, *workspace, o)
		},
	}

	f := c.Flags()
	f.StringVarP(&o.theme, "theme", "t", "", "Theme name (defaults to profilegen.yaml defaults.theme)")
	f.StringVarP(&o.profile, "profile", "p", "", "Profile YAML/JSON file (defaults to profilegen.yaml profile)")
	f.StringArrayVar(&o.sets, "set", nil, "Set a profile field: key=value (repeatable)")
	f.StringArrayVar(&o.skills, "skill", nil, "Add a skill (repeatable or comma separated; replaces profile skills)")
	f.StringArrayVar(&o.techs, "tech", nil, "Add a technology (repeatable or comma separated; replaces profile tech_stack)")
	f.StringVar(&o.githubJSON, "github-json", "", "GitHub user JSON file (output of 'gh api user') to prefill fields; - reads stdin")
	f.StringVarP(&o.out, "out", "o", "", "Output file; - writes to stdout (defaults to profilegen.yaml output)")
	f.Var(&o.format, "format", "Output format: md|html")
	f.BoolVar(&o.preview, "preview", false, "Render the result in the terminal instead of writing it (unless --out is given)")
	f.BoolVar(&o.noStats, "no-stats", false, "Drop the GitHub stats block")
	f.BoolVar(&o.noIcons, "no-icons", false, "Render tech badges without logos")
	f.StringVar(&o.themesDir, "themes-dir", "", "Directory with theme files (defaults to profilegen.yaml themes_dir)")

	return c
}

func runGenerate(cmd *cobra.Command, workspace string, o generateOpts) error {
	ws, err := loadWorkspace(workspace, o.themesDir)
	if err != nil {
		return err
	}

	format := domain.Format(o.format)

	overrides, err := buildOverrides(o)
	if err != nil {
		return err
	}

	var ghJSON []byte
	if strings.TrimSpace(o.githubJSON) != "" {
		ghJSON, err = readInput(cmd.InOrStdin(), o.githubJSON)
		if err != nil {
			return err
		}
	}

	profilePath := resolveIn(ws.root, ws.cfg.Profile)
	if o.profile != "" {
		profilePath = o.profile
	}

	log := logger.L()
	p, extracts, err := usecase.NewAssembleProfile(ws.profiles, usecase.WithAssembleLogger(log)).Execute(usecase.ProfileInput{
		Render:         ws.cfg.Render,
		GitHubJSON:     ghJSON,
		ProfilePath:    profilePath,
		RequireProfile: o.profile != "",
		Overrides:      overrides,
	})
	if err != nil {
		return err
	}
	for _, e := range extracts {
		if !e.Success {
			log.Debug("profile.github_json.skipped", "field", e.Name, "reason", e.Message)
		}
	}

	themeName := strings.TrimSpace(o.theme)
	if themeName == "" {
		themeName = ws.cfg.Defaults.Theme
	}

	doc, err := usecase.NewGenerateReadme(ws.themes, usecase.WithLogger(log)).Execute(cmd.Context(), themeName, p)
	if err != nil {
		return err
	}

	if o.preview {
		style, width := previewTarget(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), mdrender.NewTerminal(mdrender.WithStyle(style)).Render(doc.Content, width))
		if o.out == "" {
			return nil
		}
	}

	if format == domain.FormatHTML {
		if doc, err = mdrender.ToHTML(doc); err != nil {
			return err
		}
	}

	out := o.out
	if out == "" {
		out = resolveIn(ws.root, defaultOutput(ws.cfg.Output, format))
	}

	sinkOpts := []docstore.Option{docstore.WithStdout(cmd.OutOrStdout()), docstore.WithLogger(log)}
	if ws.found {
		sinkOpts = append(sinkOpts, docstore.WithHistory(stateDir(ws.root)))
	}
	loc, err := docstore.NewFileSink(out, sinkOpts...).WriteDocument(doc)
	if err != nil {
		return err
	}

	if loc != docstore.StdoutPath {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (theme=%s, handle=%s)\n", loc, doc.Theme, displayHandle(doc.Handle))
	}
	return nil
}

// formatFlag validates --format while flags are parsed.
type formatFlag domain.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }
func (f *formatFlag) Type() string   { return "format" }

func (f *formatFlag) Set(s string) error {
	v, err := domain.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatFlag(v)
	return nil
}

const defaultPreviewWidth = 100

// previewTarget picks the glamour style and wrap width for w. Anything that
// is not a terminal gets plain output.
func previewTarget(w io.Writer) (style string, width int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return mdrender.NoTTYStyle, defaultPreviewWidth
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		return "", cols
	}
	return "", defaultPreviewWidth
}

// buildOverrides turns command line flags into the top profile layer.
func buildOverrides(o generateOpts) (domain.Profile, error) {
	p := domain.NewProfile()

	fields, err := parseSets(o.sets)
	if err != nil {
		return domain.Profile{}, err
	}
	p.Fields = fields

	if len(o.skills) > 0 {
		p.Lists[domain.KeySkills] = splitAll(o.skills)
	}
	if len(o.techs) > 0 {
		p.Lists[domain.KeyTechStack] = splitAll(o.techs)
	}
	if o.noStats {
		p.Flags[domain.FlagShowStats] = false
	}
	if o.noIcons {
		p.Flags[domain.FlagShowIcons] = false
	}
	return p, nil
}

// parseSets parses key=value pairs. Values may be empty or contain '='.
func parseSets(sets []string) (domain.Fields, error) {
	out := domain.Fields{}
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, &domain.OpError{
				Op:   "cli.set",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("--set %q: expected key=value: %w", s, domain.ErrInvalidInput),
			}
		}
		out[k] = v
	}
	return out, nil
}

func splitAll(values []string) []string {
	out := []string{}
	for _, v := range values {
		out = append(out, yamlprofile.SplitList(v)...)
	}
	return out
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &domain.OpError{Op: "cli.read_stdin", Kind: domain.KindExecution, Err: err}
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{Op: "cli.read_input", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	return b, nil
}

// defaultOutput swaps the configured output's extension for .html when needed.
func defaultOutput(configured string, format domain.Format) string {
	if format != domain.FormatHTML || configured == docstore.StdoutPath {
		return configured
	}
	return strings.TrimSuffix(configured, filepath.Ext(configured)) + ".html"
}

func displayHandle(h string) string {
	if h == "" {
		return "(none)"
	}
	return h
}
