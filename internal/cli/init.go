package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkazemie/github-profile-generator/internal/infra/fsworkspace"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a profilegen workspace (profilegen.yaml, profile.yaml, themes/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if err := usecase.NewInitWorkspace(
				fsworkspace.NewInitializer(),
				usecase.WithInitLogger(logger.L()),
			).Execute(abs, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\nEdit profile.yaml, then run: profilegen generate\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}
