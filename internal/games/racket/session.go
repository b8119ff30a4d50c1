package racket

import (
	"github.com/vovakirdan/tui-racket/internal/config"
	"github.com/vovakirdan/tui-racket/internal/core"
)

// Session owns the single long-lived game for a driver and plays the part of
// the geometry provider: it keeps the playground, the paddle box and the ball
// size, and writes the paddle offset from every Result back into its box.
//
// A Session is not safe for concurrent use; drivers call it from one loop.
type Session struct {
	cfg      config.RacketConfig
	game     Game
	geometry Geometry
	ticks    int
}

// NewSession creates a stopped session from configuration.
func NewSession(cfg config.RacketConfig) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset puts the game and geometry back to their configured starting state.
// It is the only way out of StatusGameOver.
func (s *Session) Reset() {
	s.game = Game{
		Status: StatusStopped,
		Ball: Ball{
			X:     s.cfg.Ball.X,
			Y:     s.cfg.Ball.Y,
			Speed: s.cfg.Ball.Speed,
			DirX:  s.cfg.Ball.DirX,
			DirY:  s.cfg.Ball.DirY,
		},
		PaddleStep:   s.cfg.Paddle.Step,
		LoopInterval: s.cfg.Loop.Interval(),
		Pressed:      core.NewKeySet(),
	}
	s.geometry = Geometry{
		Playground: core.NewSize(s.cfg.Playground.Width, s.cfg.Playground.Height),
		Paddle:     core.NewRect(s.cfg.Paddle.X, s.cfg.Paddle.Y, s.cfg.Paddle.Width, s.cfg.Paddle.Height),
		BallHeight: s.cfg.Ball.Size,
	}
	s.ticks = 0
}

// KeyDown forwards a key press. It reports whether the press started the game.
func (s *Session) KeyDown(code core.KeyCode) bool {
	return s.game.KeyDown(code)
}

// KeyUp forwards a key release.
func (s *Session) KeyUp(code core.KeyCode) {
	s.game.KeyUp(code)
}

// Tick runs one simulation step and applies its output.
// Stopped and finished games are left untouched and do not count as ticks.
func (s *Session) Tick() Result {
	res := Step(s.game, s.geometry)
	if !s.game.IsRunning() {
		return res
	}

	s.ticks++
	s.game = res.Game

	left := res.PaddleLeft
	if s.cfg.Paddle.Clamp {
		left = core.Clamp(left, 0, core.Max(0, s.geometry.Playground.W-s.geometry.Paddle.W))
	}
	s.geometry.Paddle = s.geometry.Paddle.WithX(left)
	res.PaddleLeft = left

	return res
}

// Game returns the current game state.
func (s *Session) Game() Game {
	return s.game
}

// Geometry returns the current geometry, including the paddle position.
func (s *Session) Geometry() Geometry {
	return s.geometry
}

// BallBox returns the ball's bounding box in pixels.
func (s *Session) BallBox() core.Rect {
	return core.NewRect(s.game.Ball.X, s.game.Ball.Y, s.cfg.Ball.Size, s.cfg.Ball.Size)
}

// Ticks returns the number of simulated ticks since the last reset.
func (s *Session) Ticks() int {
	return s.ticks
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.RacketConfig {
	return s.cfg
}
