package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/quantumdash/internal/config"
	"github.com/jask/quantumdash/internal/logging"
	"github.com/jask/quantumdash/internal/random"
	"github.com/jask/quantumdash/internal/tui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	configPath string
	mode       string
	seed       uint64
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "quantumdash",
		Short: "Animated neural chess and ARC-AGI dashboard",
		Long: `quantumdash fills the terminal with fake chess games, ARC-AGI
puzzles, ticking counters and floating numbers.

Keys: c chess, a arc-agi, tab toggle, : command, ? help, q quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/quantumdash/config.toml)")
	flags.StringVar(&opts.mode, "mode", "", "Starting mode: chess or arc")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write JSON logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSnapshotCmd(opts), newInitConfigCmd(opts), newVersionCmd())
	return root
}

// loadConfig reads the config file and applies any flags the user set. The
// returned fallbacks name config values that were replaced by defaults.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, []config.Fallback, error) {
	cfg, fbs, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		mode, err := tui.ParseMode(opts.mode)
		if err != nil {
			return cfg, nil, err
		}
		cfg.UI.Mode = mode.String()
		fbs = dropFallback(fbs, "ui.mode")
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = opts.seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	return cfg, fbs, nil
}

func dropFallback(fbs []config.Fallback, key string) []config.Fallback {
	out := fbs[:0]
	for _, fb := range fbs {
		if fb.Key != key {
			out = append(out, fb)
		}
	}
	return out
}

func logFallbacks(logger *zap.Logger, fbs []config.Fallback) {
	for _, fb := range fbs {
		logger.Warn("invalid config value, using default",
			zap.String("key", fb.Key),
			zap.String("value", fb.Got),
			zap.String("default", fb.Used))
	}
}

func runDashboard(cmd *cobra.Command, opts *options) error {
	cfg, fbs, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logFallbacks(logger, fbs)

	app := tui.New(cfg, logger, random.New(cfg.Random.Seed))
	logger.Info("dashboard starting",
		zap.Stringer("mode", app.Mode()),
		zap.String("session", app.Session()),
		zap.Uint64("seed", cfg.Random.Seed))

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	app.Shutdown()
	return nil
}

func newSnapshotCmd(opts *options) *cobra.Command {
	var width, height, ticks int
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to stdout",
		Long: `Render a single frame to stdout. --ticks steps every timer that many
times first, so the frame shows a dashboard that has been running.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("snapshot size must be positive, got %dx%d", width, height)
			}
			if ticks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", ticks)
			}
			cfg, fbs, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			for _, fb := range fbs {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s = %q is invalid, using %q\n", fb.Key, fb.Got, fb.Used)
			}
			app := tui.New(cfg, zap.NewNop(), random.New(cfg.Random.Seed))
			defer app.Shutdown()
			app.Update(tea.WindowSizeMsg{Width: width, Height: height})
			app.Advance(ticks)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Snapshot(width, height))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 160, "Frame width in columns")
	cmd.Flags().IntVar(&height, "height", 48, "Frame height in rows")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Timer rounds to run before rendering")
	return cmd
}

func newInitConfigCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if opts.configPath != "" {
				path = opts.configPath
			}
			if len(args) == 1 {
				path = args[0]
			}
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quantumdash %s\n", version)
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
