package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racket/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Press any key to start. The ball speeds around the playground; keep it
from falling past your paddle. Every hit scores a point.

Controls:
  Left/h/a   - Move paddle left
  Right/l/d  - Move paddle right
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  racket play
  racket play --config ./my-racket.yaml
  racket play --log-file racket.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting racket", "playground", session.Geometry().Playground, "interval", session.Game().LoopInterval)

	if err := tui.Run(session, logger, width, height); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	g := session.Game()
	logger.Info("session ended", "score", g.Score, "status", g.Status)
}
