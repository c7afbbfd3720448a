package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Board    IntervalConfig `mapstructure:"board"`
	Puzzle   IntervalConfig `mapstructure:"puzzle"`
	Counter  IntervalConfig `mapstructure:"counter"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Floating FloatingConfig `mapstructure:"floating"`
	Sidebar  SidebarConfig  `mapstructure:"sidebar"`
	Random   RandomConfig   `mapstructure:"random"`
	Log      LogConfig      `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Mode         string `mapstructure:"mode"`
	GridCount    int    `mapstructure:"grid_count"`
	Columns      int    `mapstructure:"columns"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
}

// IntervalConfig bounds a randomized timer period.
type IntervalConfig struct {
	MinInterval time.Duration `mapstructure:"min_interval"`
	MaxInterval time.Duration `mapstructure:"max_interval"`
}

type ChartConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type FloatingConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

type SidebarConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// RandomConfig seeds the shared source. Zero means seed from the clock.
type RandomConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

// LogConfig holds logger settings. An empty File disables logging; the
// terminal belongs to the dashboard.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

const envPrefix = "QUANTUMDASH"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI:       UIConfig{Mode: ModeChess, GridCount: 10, Columns: 5, SidebarWidth: 44},
		Board:    IntervalConfig{MinInterval: 800 * time.Millisecond, MaxInterval: 2000 * time.Millisecond},
		Puzzle:   IntervalConfig{MinInterval: 200 * time.Millisecond, MaxInterval: 1000 * time.Millisecond},
		Counter:  IntervalConfig{MinInterval: 50 * time.Millisecond, MaxInterval: 250 * time.Millisecond},
		Chart:    ChartConfig{Interval: 500 * time.Millisecond},
		Floating: FloatingConfig{Interval: 300 * time.Millisecond, TTL: 8 * time.Second, Capacity: 21},
		Sidebar:  SidebarConfig{Interval: 2 * time.Second},
		Log:      LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.mode", d.UI.Mode)
	v.SetDefault("ui.grid_count", d.UI.GridCount)
	v.SetDefault("ui.columns", d.UI.Columns)
	v.SetDefault("ui.sidebar_width", d.UI.SidebarWidth)
	v.SetDefault("board.min_interval", d.Board.MinInterval)
	v.SetDefault("board.max_interval", d.Board.MaxInterval)
	v.SetDefault("puzzle.min_interval", d.Puzzle.MinInterval)
	v.SetDefault("puzzle.max_interval", d.Puzzle.MaxInterval)
	v.SetDefault("counter.min_interval", d.Counter.MinInterval)
	v.SetDefault("counter.max_interval", d.Counter.MaxInterval)
	v.SetDefault("chart.interval", d.Chart.Interval)
	v.SetDefault("floating.interval", d.Floating.Interval)
	v.SetDefault("floating.ttl", d.Floating.TTL)
	v.SetDefault("floating.capacity", d.Floating.Capacity)
	v.SetDefault("sidebar.interval", d.Sidebar.Interval)
	v.SetDefault("random.seed", d.Random.Seed)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// DefaultPath is where Load looks when neither a path nor QUANTUMDASH_CONFIG
// is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "quantumdash", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// QUANTUMDASH_ (e.g. QUANTUMDASH_UI_MODE=arc). An explicit path must exist;
// the default location is optional. Rejected values come back as fallbacks
// for the caller to log once a logger exists.
func Load(path string) (Config, []Fallback, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(envPrefix + "_CONFIG"); env != "" {
			path, explicit = env, true
		}
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Default(), nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Default(), nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c, fbs := Normalize(c)
	return c, fbs, nil
}

// Fallback records a config value Normalize rejected and what replaced it.
type Fallback struct {
	Key  string
	Got  string
	Used string
}

// Normalize replaces out-of-range values with defaults and reports each
// replacement.
func Normalize(c Config) (Config, []Fallback) {
	d := Default()
	out := c
	var fbs []Fallback
	fallback := func(key string, got, used any) {
		fbs = append(fbs, Fallback{Key: key, Got: fmt.Sprint(got), Used: fmt.Sprint(used)})
	}

	if mode, ok := CanonicalMode(c.UI.Mode); ok {
		out.UI.Mode = mode
	} else {
		out.UI.Mode = d.UI.Mode
		fallback("ui.mode", c.UI.Mode, d.UI.Mode)
	}
	if c.UI.GridCount < 1 || c.UI.GridCount > 50 {
		out.UI.GridCount = d.UI.GridCount
		fallback("ui.grid_count", c.UI.GridCount, d.UI.GridCount)
	}
	if c.UI.Columns < 1 || c.UI.Columns > 10 {
		out.UI.Columns = d.UI.Columns
		fallback("ui.columns", c.UI.Columns, d.UI.Columns)
	}
	if c.UI.SidebarWidth < 24 || c.UI.SidebarWidth > 120 {
		out.UI.SidebarWidth = d.UI.SidebarWidth
		fallback("ui.sidebar_width", c.UI.SidebarWidth, d.UI.SidebarWidth)
	}

	for _, iv := range []struct {
		key      string
		got, def IntervalConfig
		dst      *IntervalConfig
	}{
		{"board", c.Board, d.Board, &out.Board},
		{"puzzle", c.Puzzle, d.Puzzle, &out.Puzzle},
		{"counter", c.Counter, d.Counter, &out.Counter},
	} {
		if !validInterval(iv.got) {
			*iv.dst = iv.def
			fallback(iv.key+".interval",
				fmt.Sprintf("%s..%s", iv.got.MinInterval, iv.got.MaxInterval),
				fmt.Sprintf("%s..%s", iv.def.MinInterval, iv.def.MaxInterval))
		}
	}

	if c.Chart.Interval <= 0 {
		out.Chart.Interval = d.Chart.Interval
		fallback("chart.interval", c.Chart.Interval, d.Chart.Interval)
	}
	if c.Floating.Interval <= 0 {
		out.Floating.Interval = d.Floating.Interval
		fallback("floating.interval", c.Floating.Interval, d.Floating.Interval)
	}
	if c.Floating.TTL <= 0 {
		out.Floating.TTL = d.Floating.TTL
		fallback("floating.ttl", c.Floating.TTL, d.Floating.TTL)
	}
	if c.Floating.Capacity < 1 {
		out.Floating.Capacity = d.Floating.Capacity
		fallback("floating.capacity", c.Floating.Capacity, d.Floating.Capacity)
	}
	if c.Sidebar.Interval <= 0 {
		out.Sidebar.Interval = d.Sidebar.Interval
		fallback("sidebar.interval", c.Sidebar.Interval, d.Sidebar.Interval)
	}

	out.Log.File = strings.TrimSpace(c.Log.File)
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch level {
	case "debug", "info", "warn", "error":
		out.Log.Level = level
	default:
		out.Log.Level = d.Log.Level
		fallback("log.level", c.Log.Level, d.Log.Level)
	}
	return out, fbs
}

func validInterval(iv IntervalConfig) bool {
	return iv.MinInterval > 0 && iv.MaxInterval >= iv.MinInterval
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.mode", cfg.UI.Mode)
	v.Set("ui.grid_count", cfg.UI.GridCount)
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.sidebar_width", cfg.UI.SidebarWidth)
	v.Set("board.min_interval", cfg.Board.MinInterval.String())
	v.Set("board.max_interval", cfg.Board.MaxInterval.String())
	v.Set("puzzle.min_interval", cfg.Puzzle.MinInterval.String())
	v.Set("puzzle.max_interval", cfg.Puzzle.MaxInterval.String())
	v.Set("counter.min_interval", cfg.Counter.MinInterval.String())
	v.Set("counter.max_interval", cfg.Counter.MaxInterval.String())
	v.Set("chart.interval", cfg.Chart.Interval.String())
	v.Set("floating.interval", cfg.Floating.Interval.String())
	v.Set("floating.ttl", cfg.Floating.TTL.String())
	v.Set("floating.capacity", cfg.Floating.Capacity)
	v.Set("sidebar.interval", cfg.Sidebar.Interval.String())
	v.Set("random.seed", cfg.Random.Seed)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
