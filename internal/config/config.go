// Package config loads gamedo settings from a YAML file, GAMEDO_* environment
// variables and defaults, in that order of precedence after explicit flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gamedo/internal/engine"
	"gamedo/internal/render"
	"gamedo/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. GAMEDO_DB_PATH.
const EnvPrefix = "GAMEDO"

type Config struct {
	DBPath   string         `mapstructure:"db_path" yaml:"db_path"`
	PageSize int            `mapstructure:"page_size" yaml:"page_size"`
	Leveling LevelingConfig `mapstructure:"leveling" yaml:"leveling"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type LevelingConfig struct {
	Curve    string  `mapstructure:"curve" yaml:"curve"`
	K        int     `mapstructure:"k" yaml:"k"`
	Base     int     `mapstructure:"base" yaml:"base"`
	Growth   float64 `mapstructure:"growth" yaml:"growth"`
	MaxLevel int     `mapstructure:"max_level" yaml:"max_level"`
	// OnTimeBonus multiplies XP for tasks finished by their due date; 1 disables it.
	OnTimeBonus float64 `mapstructure:"on_time_bonus" yaml:"on_time_bonus"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the built-in settings. DBPath is left empty when the home
// directory cannot be determined.
func DefaultConfig() *Config {
	dbPath, _ := storage.DefaultDBPath()
	return &Config{
		DBPath:   dbPath,
		PageSize: render.DefaultPageSize,
		Leveling: LevelingConfig{
			Curve:    "quadratic",
			K:        engine.DefaultQuadraticK,
			Base:     engine.DefaultGeometricBase,
			Growth:   engine.DefaultGeometricGrowth,
			MaxLevel: engine.DefaultMaxLevel,

			OnTimeBonus: engine.DefaultOnTimeBonus,
		},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// ConfigPath returns the default location of the config file.
func ConfigPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "gamedo", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(home, ".config", "gamedo", "config.yaml"), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("leveling.curve", def.Leveling.Curve)
	v.SetDefault("leveling.k", def.Leveling.K)
	v.SetDefault("leveling.base", def.Leveling.Base)
	v.SetDefault("leveling.growth", def.Leveling.Growth)
	v.SetDefault("leveling.max_level", def.Leveling.MaxLevel)
	v.SetDefault("leveling.on_time_bonus", def.Leveling.OnTimeBonus)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path (or ConfigPath when empty). A missing file is not
// an error: defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err == nil {
			path = p
		}
	}

	v := newViper()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if explicit && errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("db_path", cfg.DBPath)
	v.Set("page_size", cfg.PageSize)
	v.Set("leveling.curve", cfg.Leveling.Curve)
	v.Set("leveling.k", cfg.Leveling.K)
	v.Set("leveling.base", cfg.Leveling.Base)
	v.Set("leveling.growth", cfg.Leveling.Growth)
	v.Set("leveling.max_level", cfg.Leveling.MaxLevel)
	v.Set("leveling.on_time_bonus", cfg.Leveling.OnTimeBonus)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every invalid setting.
func Validate(cfg *Config) []error {
	var errs []error

	if strings.TrimSpace(cfg.DBPath) == "" {
		errs = append(errs, fmt.Errorf("db_path is empty"))
	}
	if cfg.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize))
	}
	if _, err := engine.NewCurve(cfg.CurveSettings()); err != nil {
		errs = append(errs, err)
	}
	if cfg.Leveling.OnTimeBonus < 1 {
		errs = append(errs, fmt.Errorf("leveling.on_time_bonus must be at least 1, got %g", cfg.Leveling.OnTimeBonus))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level: %s", cfg.Log.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(cfg.Log.Format)] {
		errs = append(errs, fmt.Errorf("invalid log format: %s", cfg.Log.Format))
	}
	return errs
}

// CurveSettings converts the leveling section for engine.NewCurve.
func (c *Config) CurveSettings() engine.CurveSettings {
	return engine.CurveSettings{
		Kind:     c.Leveling.Curve,
		K:        c.Leveling.K,
		Base:     c.Leveling.Base,
		Growth:   c.Leveling.Growth,
		MaxLevel: c.Leveling.MaxLevel,
	}
}
