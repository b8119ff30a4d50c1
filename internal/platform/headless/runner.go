package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racket/internal/games/racket"
)

// Frame is what one tick produced.
type Frame struct {
	Tick       int
	Ball       racket.Ball
	PaddleLeft int
	Score      int
	Status     racket.Status
	Hit        bool
}

// Sink receives every frame of a run.
type Sink interface {
	Write(f Frame) error
}

// Options controls a run.
type Options struct {
	Ticks     int  // Maximum ticks to run
	Realtime  bool // Pace ticks at the game's loop interval
	KeepGoing bool // Keep ticking after game over
}

// Summary describes a finished run.
type Summary struct {
	Frames int // Loop iterations, including ones where the game was stopped or over
	Ticks  int // Simulated ticks, the same count as racket.Session.Ticks
	Hits   int
	Score  int
	Status racket.Status
}

// Runner drives a session from a script.
type Runner struct {
	session *racket.Session
	script  Script
	sink    Sink
	logger  *log.Logger
	opts    Options
}

// NewRunner creates a runner. sink may be nil.
func NewRunner(session *racket.Session, script Script, sink Sink, logger *log.Logger, opts Options) *Runner {
	return &Runner{
		session: session,
		script:  script,
		sink:    sink,
		logger:  logger,
		opts:    opts,
	}
}

// Run executes up to Options.Ticks ticks. It returns early with ctx.Err()
// when the context is cancelled, and stops after game over unless KeepGoing
// is set.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var wait <-chan time.Time
	if r.opts.Realtime {
		ticker := time.NewTicker(r.session.Game().LoopInterval)
		defer ticker.Stop()
		wait = ticker.C
	}

	events := r.script.byTick()
	var sum Summary

	for tick := 0; tick < r.opts.Ticks; tick++ {
		if wait != nil {
			select {
			case <-ctx.Done():
				return r.finish(sum), ctx.Err()
			case <-wait:
			}
		} else if err := ctx.Err(); err != nil {
			return r.finish(sum), err
		}

		r.apply(tick, events[tick])

		wasRunning := r.session.Game().IsRunning()
		res := r.session.Tick()
		sum.Frames++
		if res.Hit {
			sum.Hits++
			r.logger.Debug("paddle hit", "tick", tick, "score", res.Game.Score)
		}

		if r.sink != nil {
			f := Frame{
				Tick:       tick,
				Ball:       res.Game.Ball,
				PaddleLeft: res.PaddleLeft,
				Score:      res.Game.Score,
				Status:     res.Game.Status,
				Hit:        res.Hit,
			}
			if err := r.sink.Write(f); err != nil {
				return r.finish(sum), fmt.Errorf("write frame %d: %w", tick, err)
			}
		}

		if wasRunning && res.Game.IsGameOver() {
			r.logger.Info("game over", "tick", tick, "score", res.Game.Score)
			if !r.opts.KeepGoing {
				break
			}
		}
	}

	return r.finish(sum), nil
}

// apply feeds the tick's scripted key events into the session.
func (r *Runner) apply(tick int, events []KeyEvent) {
	for _, e := range events {
		code, err := e.Code()
		if err != nil {
			// ParseScript rejects these; hand-built scripts may not.
			r.logger.Warn("skipping key event", "tick", tick, "error", err)
			continue
		}
		if e.Up {
			r.session.KeyUp(code)
			continue
		}
		if r.session.KeyDown(code) {
			r.logger.Info("game started", "tick", tick, "key", int(code))
		}
	}
}

func (r *Runner) finish(sum Summary) Summary {
	g := r.session.Game()
	sum.Ticks = r.session.Ticks()
	sum.Score = g.Score
	sum.Status = g.Status
	return sum
}
