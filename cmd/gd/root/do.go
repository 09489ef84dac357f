package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/app"
	"gamedo/internal/ui"
)

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"do"},
		Short:   "Complete a task, or move a completed one back to active",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := ctrl.Resolve(args[0])
			if err != nil {
				return err
			}
			res, err := ctrl.Toggle(ctx, t.ID)
			if err != nil {
				return err
			}
			if a := res.Award; a != nil {
				st := ctrl.Status()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.LabelValue("Level", a.NewLevel),
					ui.ProgressBar(st.Progress.Percentage, 20),
					ui.Muted.Render(fmt.Sprintf("%d XP total, streak %d", a.TotalXP, a.Streak)),
				)
			}
			return nil
		},
	}

	return cmd
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := ctrl.Resolve(args[0])
			if err != nil {
				return err
			}
			return quietCancel(ctrl.Delete(ctx, t.ID))
		},
	}

	return cmd
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = ctrl.ClearCompleted(ctx)
			return quietCancel(err)
		},
	}

	return cmd
}

// quietCancel turns a declined prompt into a clean exit.
func quietCancel(err error) error {
	if errors.Is(err, app.ErrCancelled) {
		return nil
	}
	return err
}
