// Package config provides YAML-based configuration loading for the racket
// game: ball, paddle and playground geometry, loop timing and terminal scaling.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RacketConfig contains all configuration for the racket game.
type RacketConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Playground PlaygroundConfig `yaml:"playground"`
	Loop       LoopConfig       `yaml:"loop"`
	Render     RenderConfig     `yaml:"render"`
}

// BallConfig defines the ball's starting state.
type BallConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick, constant for the whole game
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	DirX  int `yaml:"dir_x"` // -1 or +1
	DirY  int `yaml:"dir_y"` // -1 or +1
	Size  int `yaml:"size"`  // Ball box height (and width) in pixels
}

// PaddleConfig defines the paddle's starting box and movement.
type PaddleConfig struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Step   int  `yaml:"step"`  // Pixels moved per tick while a key is held
	Clamp  bool `yaml:"clamp"` // Keep the paddle inside the playground
}

// PlaygroundConfig defines the bounds the ball moves in.
type PlaygroundConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig defines the driver cadence.
type LoopConfig struct {
	IntervalMS     int `yaml:"interval_ms"`
	FirstHoldTicks int `yaml:"first_hold_ticks"` // Ticks a fresh key press stays held before the first repeat
	HoldTicks      int `yaml:"hold_ticks"`       // Ticks a repeating key stays held without another repeat
}

// RenderConfig defines how pixels map onto terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Interval returns the loop interval as a duration.
func (c LoopConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c RacketConfig) Validate() error {
	var errs []error

	if c.Playground.Width <= 0 || c.Playground.Height <= 0 {
		errs = append(errs, fmt.Errorf("playground must be positive, got %dx%d", c.Playground.Width, c.Playground.Height))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %d", c.Ball.Speed))
	}
	if !isUnitDirection(c.Ball.DirX) || !isUnitDirection(c.Ball.DirY) {
		errs = append(errs, fmt.Errorf("ball direction must be -1 or 1, got (%d, %d)", c.Ball.DirX, c.Ball.DirY))
	}
	if c.Ball.Size < 0 {
		errs = append(errs, fmt.Errorf("ball size must not be negative, got %d", c.Ball.Size))
	}
	if c.Paddle.Width < 0 || c.Paddle.Height < 0 {
		errs = append(errs, fmt.Errorf("paddle size must not be negative, got %dx%d", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Loop.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("loop interval must be positive, got %dms", c.Loop.IntervalMS))
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render cell size must be positive, got %dx%d", c.Render.CellWidth, c.Render.CellHeight))
	}

	return errors.Join(errs...)
}

func isUnitDirection(d int) bool {
	return d == -1 || d == 1
}
