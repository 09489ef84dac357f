package root

import (
	"context"

	"github.com/spf13/cobra"

	"gamedo/internal/render"
)

func newListCmd() *cobra.Command {
	var activePage, completedPage int
	var expand bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active and completed tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			ctrl.SetPage(render.PartitionActive, activePage)
			ctrl.SetPage(render.PartitionCompleted, completedPage)
			return render.WriteView(cmd.OutOrStdout(), ctrl.View(), expand)
		},
	}

	cmd.Flags().IntVarP(&activePage, "active-page", "a", 1, "Page of active tasks")
	cmd.Flags().IntVarP(&completedPage, "completed-page", "c", 1, "Page of completed tasks")
	cmd.Flags().BoolVarP(&expand, "expand", "e", false, "Show full descriptions")

	return cmd
}
