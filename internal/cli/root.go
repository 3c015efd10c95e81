package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/docstore"
	"github.com/mkazemie/github-profile-generator/internal/infra/fsworkspace"
	"github.com/mkazemie/github-profile-generator/internal/infra/logger"
	"github.com/mkazemie/github-profile-generator/internal/infra/mdrender"
	"github.com/mkazemie/github-profile-generator/internal/ports"
	"github.com/mkazemie/github-profile-generator/internal/ui/tui"
	"github.com/mkazemie/github-profile-generator/internal/usecase"
)

// Exit codes by error kind. Anything unclassified exits with 1.
const (
	exitUsage    = 2
	exitNotFound = 3
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindInvalidConfig:
		return exitUsage
	case domain.KindNotFound:
		return exitNotFound
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var closeLog func() error

	cmd := &cobra.Command{
		Use:          "profilegen",
		Short:        "Generate a GitHub profile README from a theme and your profile",
		SilenceUsage: true,
		// Logs are only written inside a workspace; failures leave L() discarding.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			root, found, err := resolveWorkspaceRoot(workspace)
			if err != nil || !found {
				return
			}
			closeLog, _ = logger.Setup(logger.Config{Root: root, Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if closeLog != nil {
				_ = closeLog()
				closeLog = nil
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, "")
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceRoot:        ws.root,
				WorkspaceFound:       ws.found,
				Config:               ws.cfg,
				Themes:               ws.themes,
				Generate:             usecase.NewGenerateReadme(ws.themes, usecase.WithLogger(logger.L())),
				Assemble:             usecase.NewAssembleProfile(ws.profiles, usecase.WithAssembleLogger(logger.L())),
				Renderer:             mdrender.NewTerminal(),
				WorkspaceLocator:     newFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				NewSink: func(path string) ports.DocumentSink {
					return docstore.NewFileSink(path, docstore.WithHistory(stateDir(ws.root)))
				},
				Logger: logger.L(),
				Debug:  debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .profilegen/logs/profilegen.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		generateCmd(&workspace),
		themesCmd(&workspace),
		checkCmd(&workspace),
		historyCmd(&workspace),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
