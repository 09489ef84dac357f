package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gamedo/internal/config"
	"gamedo/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Configuration"))
			fmt.Fprintln(out, ui.LabelValue("db_path", cfg.DBPath))
			fmt.Fprintln(out, ui.LabelValue("page_size", cfg.PageSize))
			fmt.Fprintln(out, ui.LabelValue("leveling.curve", cfg.Leveling.Curve))
			switch cfg.Leveling.Curve {
			case "geometric":
				fmt.Fprintln(out, ui.LabelValue("leveling.base", cfg.Leveling.Base))
				fmt.Fprintln(out, ui.LabelValue("leveling.growth", cfg.Leveling.Growth))
				fmt.Fprintln(out, ui.LabelValue("leveling.max_level", cfg.Leveling.MaxLevel))
			default:
				fmt.Fprintln(out, ui.LabelValue("leveling.k", cfg.Leveling.K))
			}
			fmt.Fprintln(out, ui.LabelValue("leveling.on_time_bonus", cfg.Leveling.OnTimeBonus))
			fmt.Fprintln(out, ui.LabelValue("log.level", cfg.Log.Level))
			fmt.Fprintln(out, ui.LabelValue("log.format", cfg.Log.Format))

			for _, err := range config.Validate(cfg) {
				fmt.Fprintln(out, ui.Bad.Render(ui.IconError+" "+err.Error()))
			}
			return nil
		},
	}

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		// The target file usually does not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" wrote "+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
