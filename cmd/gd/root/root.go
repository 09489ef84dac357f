package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gamedo/internal/config"
	"gamedo/internal/logging"
	"gamedo/internal/ui"
)

const Version = "0.1.0"

var (
	configPath string
	dbPath     string
	logLevel   string
	assumeYes  bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "gd",
	Short:         "gamedo: a to-do list that levels you up",
	Long:          "gamedo is a local-first task tracker that awards XP for finished tasks, tracks daily streaks and unlocks achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.DBPath = dbPath
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		cfg = c
		logger = logging.New(cmd.ErrOrStderr(), c.Log.Level, c.Log.Format)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/gamedo/config.yaml)")
	pf.StringVar(&dbPath, "db", "", "Database file, or :memory: for a throwaway session (overrides db_path)")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	pf.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newToggleCmd(),
		newRmCmd(),
		newClearCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newBoardCmd(),
		newSeedCmd(),
		newResetCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
