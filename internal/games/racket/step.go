package racket

import "github.com/vovakirdan/tui-racket/internal/core"

// Result is the outcome of one tick.
type Result struct {
	Game       Game
	PaddleLeft int  // New paddle left offset, to be written back to the geometry
	Hit        bool // Whether the paddle hit the ball this tick
}

// Step advances the game by one tick. It is pure and total: it never fails,
// never mutates its arguments and returns g unchanged unless g is running.
//
// Two look-aheads are taken from the moved ball. The hit test projects one
// tick forward with the direction the ball just moved in; the game-over test
// projects one tick forward again with the direction after a possible paddle
// bounce. Both are kept separate so the game ends exactly one tick after the
// last chance to hit.
func Step(g Game, geo Geometry) Result {
	if !g.IsRunning() {
		return Result{Game: g, PaddleLeft: geo.Paddle.X}
	}

	// Ball direction and position
	dirX := resolveDirection(g.Ball.X, g.Ball.Speed, g.Ball.DirX, geo.Playground.W)
	dirY := resolveDirection(g.Ball.Y, g.Ball.Speed, g.Ball.DirY, geo.Playground.H)
	deltaX := g.Ball.Speed * dirX
	deltaY := g.Ball.Speed * dirY
	g.Ball.DirX = dirX
	g.Ball.DirY = dirY
	g.Ball.X += deltaX
	g.Ball.Y += deltaY

	// Paddle
	paddleLeft := movePaddle(geo.Paddle.X, g.PaddleStep, g.Pressed)
	moved := geo
	moved.Paddle = geo.Paddle.WithX(paddleLeft)

	// Hit, score and bounce
	hit := isPaddleHit(g.Ball, moved)
	if hit {
		g.Score++
		g.Ball.DirY = -1
	}

	if isMissed(g.Ball, moved) {
		g.Status = StatusGameOver
	}

	return Result{Game: g, PaddleLeft: paddleLeft, Hit: hit}
}

// resolveDirection flips the direction along one axis when the next position
// would leave [0, limit]. The upper bound is checked first and the lower bound
// overrides it.
func resolveDirection(pos, speed, dir, limit int) int {
	n := next(pos, speed, dir)
	if n > limit {
		dir = -1
	}
	if n < 0 {
		dir = 1
	}
	return dir
}

// movePaddle returns the paddle's new left offset. Left wins when both keys
// are held. The result is not clamped to the playground.
func movePaddle(left, step int, pressed core.KeySet) int {
	if pressed.Has(KeyLeft) {
		return left - step
	} else if pressed.Has(KeyRight) {
		return left + step
	}
	return left
}

// isPaddleHit reports whether the ball, one tick ahead, is over the paddle
// horizontally and at or below the paddle boundary.
func isPaddleHit(ball Ball, geo Geometry) bool {
	x := next(ball.X, ball.Speed, ball.DirX)
	y := next(ball.Y, ball.Speed, ball.DirY)
	return x >= geo.Paddle.X && x <= geo.Paddle.Right() && y >= geo.paddleBoundary()
}

// isMissed reports whether the ball, one tick ahead and lifted by the paddle
// height, is still past the paddle boundary.
func isMissed(ball Ball, geo Geometry) bool {
	y := next(ball.Y, ball.Speed, ball.DirY) - geo.Paddle.H
	return y > geo.paddleBoundary()
}
