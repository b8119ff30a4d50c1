package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racket/internal/platform/headless"
)

var (
	flagTicks     int
	flagScript    string
	flagRealtime  bool
	flagKeepGoing bool
	flagEvery     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless from a key script",
	Long: `Run the simulation without a terminal UI and print a tick table.

Key input comes from a YAML script. Without one, the game starts on tick 0
and the paddle never moves.

Script format:
  events:
    - tick: 0
      key: right        # left, right, space, enter or a numeric key code
    - tick: 20
      key: right
      up: true          # release

Examples:
  racket sim
  racket sim --ticks 1000 --every 25
  racket sim --script ./keys.yaml --realtime`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to a YAML key script")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured loop interval")
	simCmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Keep ticking after game over")
	simCmd.Flags().IntVar(&flagEvery, "every", 10, "Print every n-th tick (hits and status changes are always printed)")
}

func runSim(_ *cobra.Command, _ []string) {
	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	script := headless.Script{Events: []headless.KeyEvent{{Tick: 0, Key: "space"}}}
	if flagScript != "" {
		script, err = headless.LoadScript(flagScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := headless.NewTableSink(flagEvery)
	runner := headless.NewRunner(session, script, sink, logger, headless.Options{
		Ticks:     flagTicks,
		Realtime:  flagRealtime,
		KeepGoing: flagKeepGoing,
	})

	sum, runErr := runner.Run(ctx)
	if err := sink.Render(os.Stdout); err != nil {
		logger.Error("could not print frames", "error", err)
	}
	fmt.Printf("frames: %d  ticks: %d  hits: %d  score: %d  status: %s\n", sum.Frames, sum.Ticks, sum.Hits, sum.Score, sum.Status)

	if runErr != nil {
		logger.Error("simulation interrupted", "error", runErr)
		stop()
		closer.Close()
		os.Exit(1)
	}
}
