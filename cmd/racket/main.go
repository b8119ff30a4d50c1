// racket is a terminal Pong for one player: keep the ball in play with the
// paddle at the bottom of the playground.
//
// Usage:
//
//	racket play              - Play in the terminal
//	racket sim               - Run the game headless from a key script
//	racket config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default search: ~/.arcade/configs, ./configs)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Log file for play mode (default: none)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racket/internal/config"
	"github.com/vovakirdan/tui-racket/internal/games/racket"
)

var (
	// Global flags
	flagConfig   string
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
	Use:   "racket",
	Short: "Racket - single-player Pong in your terminal",
	Long: `Racket is a terminal Pong for one player. The ball bounces around the
playground; move the paddle to keep it from falling past the bottom.

Available commands:
  play     - Play in the terminal
  sim      - Run the game headless from a key script
  config   - Print the effective configuration

Examples:
  racket play
  racket play --config ./my-racket.yaml
  racket sim --ticks 300 --script ./keys.yaml
  racket config > ~/.arcade/configs/racket.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the racket configuration named by --config.
func loadConfig() (config.RacketConfig, error) {
	cfg, err := config.LoadRacket(flagConfig)
	if err != nil {
		return config.RacketConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newSession loads the configuration and creates a session from it.
func newSession() (*racket.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	session := racket.NewSession(cfg)
	if err := session.Geometry().Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	return session, nil
}

// newLogger creates the command logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "racket",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
