// Package racket implements the single-paddle Pong game: a ball bounces
// inside a rectangular playground and the player keeps it in play with a
// horizontal paddle at the bottom.
//
// The package holds the pure simulation. Geometry, key state and timing are
// supplied by the caller on every tick; see Step and Session.
package racket

import (
	"time"

	"github.com/vovakirdan/tui-racket/internal/core"
)

// Key codes recognized by the simulation. Any other code is ignored.
const (
	KeyLeft  core.KeyCode = 37
	KeyRight core.KeyCode = 39
)

// Default game settings
const (
	DefaultBallSpeed    = 5
	DefaultBallX        = 135
	DefaultBallY        = 100
	DefaultPaddleStep   = 5
	DefaultLoopInterval = 16 * time.Millisecond
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
	StatusGameOver
)

var statusName = map[Status]string{
	StatusStopped:  "stopped",
	StatusRunning:  "running",
	StatusGameOver: "game_over",
}

func (s Status) String() string {
	if name, ok := statusName[s]; ok {
		return name
	}
	return "unknown"
}

// Ball is the ball's position (pixels), speed (pixels per tick) and
// direction. DirX and DirY are always -1 or +1.
type Ball struct {
	X, Y       int
	Speed      int
	DirX, DirY int
}

// DefaultBall returns the ball every new game starts with.
func DefaultBall() Ball {
	return Ball{
		X:     DefaultBallX,
		Y:     DefaultBallY,
		Speed: DefaultBallSpeed,
		DirX:  -1,
		DirY:  -1,
	}
}

// next returns the position one tick ahead along a single axis.
func next(pos, speed, dir int) int {
	return pos + speed*dir
}

// Game is the whole game aggregate threaded through Step.
type Game struct {
	Status       Status
	Ball         Ball
	Score        int
	PaddleStep   int           // Pixels the paddle moves per tick
	LoopInterval time.Duration // Driver cadence, not used by Step
	Pressed      core.KeySet   // Keys currently held
}

// NewGame creates a stopped game with default settings.
func NewGame() Game {
	return Game{
		Status:       StatusStopped,
		Ball:         DefaultBall(),
		PaddleStep:   DefaultPaddleStep,
		LoopInterval: DefaultLoopInterval,
		Pressed:      core.NewKeySet(),
	}
}

// IsRunning reports whether the game is being simulated.
func (g Game) IsRunning() bool { return g.Status == StatusRunning }

// IsStopped reports whether the game is waiting for the first key press.
func (g Game) IsStopped() bool { return g.Status == StatusStopped }

// IsGameOver reports whether the ball was missed.
func (g Game) IsGameOver() bool { return g.Status == StatusGameOver }

// KeyDown records a held key. The first key press of a stopped game starts
// it; the return value reports whether this press did so.
func (g *Game) KeyDown(code core.KeyCode) bool {
	g.Pressed.Add(code)
	if g.IsStopped() {
		g.Status = StatusRunning
		return true
	}
	return false
}

// KeyUp releases a key.
func (g *Game) KeyUp(code core.KeyCode) {
	g.Pressed.Remove(code)
}
