package racket

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-racket/internal/core"
)

// Geometry is the pixel geometry Step reads on every tick. The simulation
// never owns it: the paddle box comes from whoever draws the paddle, and the
// new paddle offset in Result is written back by that same collaborator.
//
// Step assumes Playground.W > 0, Playground.H > 0 and Paddle.W >= 0.
type Geometry struct {
	Playground core.Size
	Paddle     core.Rect
	BallHeight int
}

// Validate reports geometry that breaks Step's preconditions.
func (geo Geometry) Validate() error {
	var errs []error
	if geo.Playground.W <= 0 || geo.Playground.H <= 0 {
		errs = append(errs, fmt.Errorf("playground must be positive, got %s", geo.Playground))
	}
	if geo.Paddle.W < 0 {
		errs = append(errs, fmt.Errorf("paddle width must not be negative, got %d", geo.Paddle.W))
	}
	return errors.Join(errs...)
}

// paddleBoundary is the y a ball must reach to count as touching the paddle.
// The ball height is subtracted so the hit registers before the ball overlaps
// the paddle visually.
func (geo Geometry) paddleBoundary() int {
	return geo.Paddle.Y - geo.BallHeight
}
