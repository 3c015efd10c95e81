package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

func checkCmd(workspace *string) *cobra.Command {
	var theme, profile, themesDir string
	var strict, all bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Report which theme placeholders your profile leaves blank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace, themesDir)
			if err != nil {
				return err
			}

			profilePath := resolveIn(ws.root, ws.cfg.Profile)
			if profile != "" {
				profilePath = profile
			}

			p, _, err := usecase.NewAssembleProfile(ws.profiles, usecase.WithAssembleLogger(logger.L())).Execute(usecase.ProfileInput{
				Render:         ws.cfg.Render,
				ProfilePath:    profilePath,
				RequireProfile: profile != "",
			})
			if err != nil {
				return err
			}

			names, err := checkTargets(ws, theme, all)
			if err != nil {
				return err
			}

			reports, err := usecase.NewCheckTheme(ws.themes).ExecuteAll(cmd.Context(), names, p)
			if err != nil {
				return err
			}

			blank := 0
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printReport(cmd, r)
				blank += len(r.Missing)
			}

			if strict && blank > 0 {
				return &domain.OpError{
					Op:   "cli.check",
					Kind: domain.KindInvalidInput,
					Err:  fmt.Errorf("%d placeholder(s) left blank: %w", blank, domain.ErrInvalidInput),
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&theme, "theme", "t", "", "Theme name (defaults to profilegen.yaml defaults.theme)")
	c.Flags().StringVarP(&profile, "profile", "p", "", "Profile YAML/JSON file (defaults to profilegen.yaml profile)")
	c.Flags().StringVar(&themesDir, "themes-dir", "", "Directory with theme files (defaults to profilegen.yaml themes_dir)")
	c.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any placeholder is blank")
	c.Flags().BoolVar(&all, "all", false, "Check every available theme")
	c.MarkFlagsMutuallyExclusive("theme", "all")
	return c
}

// checkTargets is the configured default theme, the -t theme or, with all,
// every listed theme.
func checkTargets(ws *workspaceCtx, theme string, all bool) ([]string, error) {
	if !all {
		if t := strings.TrimSpace(theme); t != "" {
			return []string{t}, nil
		}
		return []string{ws.cfg.Defaults.Theme}, nil
	}

	refs, err := ws.themes.ListThemes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return names, nil
}

func printReport(cmd *cobra.Command, r domain.ThemeReport) {
	w := cmd.OutOrStdout()

	missing := map[string]bool{}
	for _, m := range r.Missing {
		missing[m] = true
	}

	fmt.Fprintf(w, "Theme: %s\n\n", r.Theme)
	for _, name := range r.Placeholders {
		mark := "✓"
		if missing[name] {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, name)
	}
	fmt.Fprintf(w, "\n%d placeholder(s), %d blank\n", len(r.Placeholders), len(r.Missing))
}
