package root

import (
	"context"

	"github.com/spf13/cobra"

	"gamedo/internal/render"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add a few sample tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := ctrl.SeedSamples(ctx); err != nil {
				return err
			}
			return render.WritePage(cmd.OutOrStdout(), ctrl.View().Active, false)
		},
	}

	return cmd
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			return quietCancel(ctrl.Reset(ctx))
		},
	}

	return cmd
}
