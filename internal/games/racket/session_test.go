package racket

import (
	"testing"

	"github.com/vovakirdan/tui-racket/internal/config"
)

func TestSessionStartsStopped(t *testing.T) {
	s := NewSession(config.DefaultRacketConfig())

	before := s.Game().Ball
	res := s.Tick()

	if res.Game.Status != StatusStopped {
		t.Errorf("Status = %v, expected stopped", res.Game.Status)
	}
	if s.Game().Ball != before {
		t.Error("ball should not move before the first key press")
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0 while stopped", s.Ticks())
	}
}

func TestSessionTickAppliesResult(t *testing.T) {
	s := NewSession(config.DefaultRacketConfig())

	if !s.KeyDown(KeyRight) {
		t.Fatal("first key press should start the game")
	}
	res := s.Tick()

	if res.PaddleLeft != 105 {
		t.Errorf("PaddleLeft = %d, expected 105", res.PaddleLeft)
	}
	if s.Geometry().Paddle.X != 105 {
		t.Errorf("paddle box X = %d, expected the new offset to be written back", s.Geometry().Paddle.X)
	}
	if got := s.Game().Ball; got.X != 130 || got.Y != 95 {
		t.Errorf("ball = (%d, %d), expected (130, 95)", got.X, got.Y)
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}

	s.KeyUp(KeyRight)
	s.Tick()
	if s.Geometry().Paddle.X != 105 {
		t.Errorf("released paddle moved to %d", s.Geometry().Paddle.X)
	}
}

func TestSessionUnclampedByDefault(t *testing.T) {
	cfg := config.DefaultRacketConfig()
	cfg.Paddle.X = 0
	s := NewSession(cfg)
	s.KeyDown(KeyLeft)

	s.Tick()
	if s.Geometry().Paddle.X != -5 {
		t.Errorf("paddle X = %d, expected -5 without clamping", s.Geometry().Paddle.X)
	}
}

func TestSessionClampOption(t *testing.T) {
	cfg := config.DefaultRacketConfig()
	cfg.Paddle.Clamp = true
	cfg.Paddle.X = 228
	s := NewSession(cfg)
	s.KeyDown(KeyRight)

	res := s.Tick()
	if res.PaddleLeft != 230 {
		t.Errorf("PaddleLeft = %d, expected clamp to 230", res.PaddleLeft)
	}
	if s.Geometry().Paddle.Right() != 300 {
		t.Errorf("paddle right edge = %d, expected 300", s.Geometry().Paddle.Right())
	}
}

func TestSessionGameOverAndReset(t *testing.T) {
	cfg := config.DefaultRacketConfig()
	// Paddle parked far right so the default serve is missed
	cfg.Paddle.X = 230
	cfg.Ball.DirY = 1
	cfg.Ball.Y = 150
	s := NewSession(cfg)
	s.KeyDown(65)

	for i := 0; i < 100 && !s.Game().IsGameOver(); i++ {
		s.Tick()
	}
	if !s.Game().IsGameOver() {
		t.Fatal("expected the game to end")
	}

	ticks := s.Ticks()
	s.Tick()
	if s.Ticks() != ticks {
		t.Error("ticks should not advance after game over")
	}
	if s.KeyDown(65) {
		t.Error("key press should not restart a finished game")
	}

	s.Reset()
	g := s.Game()
	if !g.IsStopped() || g.Score != 0 || g.Pressed.Len() != 0 {
		t.Errorf("Reset should restore a stopped game, got %+v", g)
	}
	if s.Geometry().Paddle.X != 230 {
		t.Errorf("Reset should restore the paddle, got X=%d", s.Geometry().Paddle.X)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d after reset", s.Ticks())
	}
}

func TestSessionBallBox(t *testing.T) {
	s := NewSession(config.DefaultRacketConfig())
	box := s.BallBox()
	if box.X != 135 || box.Y != 100 || box.W != 10 || box.H != 10 {
		t.Errorf("BallBox() = %+v", box)
	}
}
