package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

func themesCmd(workspace *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "themes",
		Short: "Inspect available themes",
	}

	c.AddCommand(themesListCmd(workspace))
	return c
}

func themesListCmd(workspace *string) *cobra.Command {
	var (
		themesDir string
		match     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and workspace themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace, themesDir)
			if err != nil {
				return err
			}

			refs, err := ws.themes.ListThemes()
			if err != nil {
				return err
			}
			if refs, err = filterThemes(refs, match); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no themes found)")
				return nil
			}

			for _, r := range refs {
				source := "builtin"
				if !r.Builtin {
					source = r.Path
					if rel, err := filepath.Rel(ws.root, r.Path); err == nil && !strings.HasPrefix(rel, "..") {
						source = rel
					}
				}

				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, source)
				if r.Title != "" || r.Description != "" {
					fmt.Fprintf(w, "    %s", r.Title)
					if r.Description != "" {
						if r.Title != "" {
							fmt.Fprint(w, ": ")
						}
						fmt.Fprint(w, r.Description)
					}
					fmt.Fprintln(w)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themesDir, "themes-dir", "", "Directory with theme files (defaults to profilegen.yaml themes_dir)")
	cmd.Flags().StringVar(&match, "match", "", "Only list themes whose name matches the glob (e.g. 'dark-*')")
	return cmd
}

// filterThemes keeps refs whose name matches pattern. An empty pattern keeps all.
func filterThemes(refs []domain.ThemeRef, pattern string) ([]domain.ThemeRef, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return refs, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "cli.themes",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("invalid --match pattern %q: %w", pattern, err),
		}
	}

	out := make([]domain.ThemeRef, 0, len(refs))
	for _, r := range refs {
		if g.Match(r.Name) {
			out = append(out, r)
		}
	}
	return out, nil
}
