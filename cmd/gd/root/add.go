package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gamedo/internal/app"
	"gamedo/internal/engine"
	"gamedo/internal/ui"
)

// parseDue reads a --due value. An empty value or "none" yields nil.
func parseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	t, err := time.Parse(engine.DayKeyLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q (use YYYY-MM-DD or none)", s)
	}
	return &t, nil
}

func newAddCmd() *cobra.Command {
	var desc, diff, due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			dueDate, err := parseDue(due)
			if err != nil {
				return err
			}

			ctx := context.Background()
			ctrl, cleanup, err := openController(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := ctrl.SaveTask(ctx, "", app.TaskInput{
				Title:       strings.Join(args, " "),
				Description: desc,
				Difficulty:  d,
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}
			info := d.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.IconPlus,
				ui.Key.Render(t.ShortID()),
				t.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP)", info.Label, info.XP)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "m", "", "Description")
	cmd.Flags().StringVarP(&diff, "diff", "d", string(engine.DefaultDifficulty), "Difficulty ("+engine.DifficultyChoices()+")")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newEditCmd() *cobra.Command {
	var title, desc, diff, due string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's title, description, difficulty or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &desc
			}
			if cmd.Flags().Changed("diff") {
				d, err := engine.ParseDifficulty(diff)
				if err != nil {
					return err
				}
				in.Difficulty = &d
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := parseDue(due)
				if err != nil {
					return err
				}
				in.DueDate = dueDate
				in.ClearDueDate = dueDate == nil
			}

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
			_, err = ctrl.Edit(ctx, t.ID, in)
			return err
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "m", "", "New description")
	cmd.Flags().StringVarP(&diff, "diff", "d", "", "New difficulty ("+engine.DifficultyChoices()+")")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, or none to clear)")

	return cmd
}
