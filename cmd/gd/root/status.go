package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gamedo/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and today's progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			st := ctrl.Status()
			p := st.Player
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			if st.Progress.Required == 0 {
				fmt.Fprintln(out, ui.LabelValue("Progress", ui.Gold.Render("max level")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%s %s",
					ui.ProgressBar(st.Progress.Percentage, 24),
					ui.Muted.Render(fmt.Sprintf("%d / %d XP (%d to go)", st.Progress.Current, st.Progress.Required, st.Progress.Remaining())),
				)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", p.TasksCompleted))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Daily"))
			goal := fmt.Sprintf("%d / %d XP", st.XPToday, st.DailyGoal)
			if st.DailyGoal > 0 && st.XPToday >= st.DailyGoal {
				goal = ui.Good.Render(goal + " goal reached")
			}
			fmt.Fprintln(out, "- "+ui.LabelValue("Today", goal))
			fmt.Fprintln(out, "- "+ui.LabelValue("Tasks today", st.TasksToday))
			fmt.Fprintln(out, "- "+ui.LabelValue("Streak", fmt.Sprintf("%d day(s)", st.Streak)))
			fmt.Fprintln(out, "- "+ui.LabelValue("Achievements", fmt.Sprintf("%d / %d", st.Achievements, st.Total)))
			return nil
		},
	}

	return cmd
}

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements and which ones are unlocked",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, st := range svc.Achievements() {
				a := st.Achievement
				mark := ui.Muted.Render(ui.IconLock)
				name := ui.Muted.Render(a.Name)
				if st.Unlocked {
					mark = a.Icon
					name = ui.Gold.Render(a.Name)
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, name, a.Description, ui.Muted.Render(fmt.Sprintf("(+%d XP)", a.XPReward)))
			}
			return nil
		},
	}

	return cmd
}
