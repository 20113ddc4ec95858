// flappy is a terminal rendition of the flap-through-the-pipes game.
//
// Usage:
//
//	flappy play              - Play interactively
//	flappy simulate          - Run a headless game with an autopilot
//	flappy replays           - List recorded runs
//	flappy replay <id>       - Re-simulate a recorded run and verify it
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible pipes
//	--config <path>     - Game config YAML
//	--atlas <path>      - Sprite atlas YAML
//	--db <path>         - Replay database (default: ~/.flappy/replays.db)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAtlas    string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal rendition of the side-scrolling pipe game.

Available commands:
  play      - Play interactively
  simulate  - Headless run with an autopilot
  replays   - List recorded runs
  replay    - Re-simulate a recorded run
  config    - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --record
  flappy simulate --ticks 5000
  flappy replays
  flappy replay 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAtlas, "atlas", "", "Path to sprite atlas YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback (nil discards). The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	case fallback != nil:
		w = fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}

// loadAssets loads and validates the game configuration and sprite atlas.
// Either failing stops the command before any game loop starts.
func loadAssets() (config.FlappyConfig, *assets.Atlas, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	atlas, err := assets.Load(flagAtlas)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	return cfg, atlas, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// warn reports a failure the command survives. The terminal always sees
// it, since interactive play only logs to --log-file.
func warn(w io.Writer, logger *log.Logger, msg string, err error) {
	fmt.Fprintf(w, "Warning: %s: %v\n", msg, err)
	logger.Warn(msg, "error", err)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
