package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds grid and rule settings
type GameConfig struct {
	TileSize      int     `mapstructure:"tile_size"`
	WidthTiles    int     `mapstructure:"width_tiles"`
	HeightTiles   int     `mapstructure:"height_tiles"`
	FPS           int     `mapstructure:"fps"`
	TargetPercent float64 `mapstructure:"target_percent"`
	Lives         int     `mapstructure:"lives"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	ShowGrid       bool `mapstructure:"show_grid"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.tile_size", 10)
	v.SetDefault("game.width_tiles", 90)
	v.SetDefault("game.height_tiles", 70)
	v.SetDefault("game.fps", 60)
	v.SetDefault("game.target_percent", 50.0)
	v.SetDefault("game.lives", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_grid", true)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/qixgrid")
	}

	v.SetEnvPrefix("QIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !missingConfig(err, configPath) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil && !missingConfig(err, envFile) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("merged config validation failed: %w", err)
	}
	cfg = next

	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reload that fails
// validation is discarded and reported through onChange.
func WatchConfig(onChange func(*Config, error)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			cfg = next
		}
		if onChange != nil {
			onChange(cfg, err)
		}
	})
}

// missingConfig reports whether err only says the config file is absent,
// which falls back to defaults. A file that exists but fails to parse is
// always an error.
func missingConfig(err error, path string) bool {
	if path == "" {
		var notFound viper.ConfigFileNotFoundError
		return errors.As(err, &notFound)
	}
	return errors.Is(err, fs.ErrNotExist)
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.TileSize <= 0 {
		return fmt.Errorf("game.tile_size must be positive")
	}
	if c.Game.WidthTiles < 2 || c.Game.HeightTiles < 2 {
		return fmt.Errorf("game.width_tiles and game.height_tiles must be at least 2")
	}
	if c.Game.FPS <= 0 {
		return fmt.Errorf("game.fps must be positive")
	}
	if c.Game.TargetPercent <= 0 || c.Game.TargetPercent > 100 {
		return fmt.Errorf("game.target_percent must be in (0, 100]")
	}
	if c.Game.Lives < 1 {
		return fmt.Errorf("game.lives must be at least 1")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
