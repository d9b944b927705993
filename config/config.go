package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"impulse-snake/game"
	"impulse-snake/game/types"
	"impulse-snake/input"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SNAKE"

type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Window   WindowConfig   `mapstructure:"window"`
	Input    InputConfig    `mapstructure:"input"`
	Log      LogConfig      `mapstructure:"log"`
	Headless HeadlessConfig `mapstructure:"headless"`
}

type GameConfig struct {
	GridSize     int           `mapstructure:"grid_size"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Seed         uint64        `mapstructure:"seed"`
}

type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`
}

type InputConfig struct {
	StartDebounce time.Duration `mapstructure:"start_debounce"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type HeadlessConfig struct {
	Episodes int `mapstructure:"episodes"`
	MaxTicks int `mapstructure:"max_ticks"`
}

// Engine returns the engine settings.
func (c *Config) Engine() game.Config {
	return game.Config{
		GridSize:     c.Game.GridSize,
		TickInterval: c.Game.TickInterval,
		Seed:         c.Game.Seed,
	}
}

func (c *Config) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Input.StartDebounce < 0 {
		return fmt.Errorf("start debounce must not be negative, got %s", c.Input.StartDebounce)
	}
	if c.Headless.Episodes < 0 || c.Headless.MaxTicks < 0 {
		return errors.New("headless episodes and max ticks must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.grid_size", types.DefaultGridSize)
	v.SetDefault("game.tick_interval", types.DefaultTickInterval)
	v.SetDefault("game.seed", 0)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.fps", 60)
	v.SetDefault("input.start_debounce", input.DefaultStartDebounce)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("headless.episodes", 0)
	v.SetDefault("headless.max_ticks", 10000)
}

// Flags declares the command-line overrides. Flag names match config keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("impulse-snake", pflag.ContinueOnError)
	fs.String("config", ".", "Directory holding config.yaml")
	fs.Int("game.grid_size", types.DefaultGridSize, "Grid cells per side")
	fs.Duration("game.tick_interval", types.DefaultTickInterval, "Time between snake moves")
	fs.Uint64("game.seed", 0, "Food placement seed (0 = random)")
	fs.Int("window.width", 800, "Initial window width")
	fs.Int("window.height", 800, "Initial window height")
	fs.String("log.level", "info", "Log level")
	fs.Bool("log.development", false, "Human-readable logs")
	fs.Int("headless.episodes", 0, "Run N autopilot games without a window")
	fs.Int("headless.max_ticks", 10000, "Tick cap per headless game")
	return fs
}

// LoadConfig layers defaults, an optional config.yaml under path, an
// optional .env, SNAKE_* environment variables and any flags that were
// explicitly set, in increasing priority.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
