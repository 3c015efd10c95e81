package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/infra/docstore"
)

func historyCmd(workspace *string) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "Show the READMEs generated in this workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return &domain.OpError{
					Op:   "cli.history",
					Kind: domain.KindInvalidInput,
					Err:  fmt.Errorf("--limit must not be negative: %w", domain.ErrInvalidInput),
				}
			}

			root, found, err := resolveWorkspaceRoot(*workspace)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !found {
				fmt.Fprintln(w, "(no workspace: history is only kept inside a workspace)")
				return nil
			}

			entries, err := docstore.ReadHistory(stateDir(root))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(w, "(no history yet)")
				return nil
			}

			// Newest last; --limit keeps the most recent entries.
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%s  %-10s %-5s %s  (%d bytes, handle=%s)\n",
					e.GeneratedAt.Local().Format(time.DateTime), e.Theme, e.Format, e.File, e.Bytes, displayHandle(e.Handle))
			}
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Show at most this many recent entries (0 = all)")
	return c
}
