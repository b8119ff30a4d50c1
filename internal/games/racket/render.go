package racket

import (
	"fmt"

	"github.com/vovakirdan/tui-racket/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// Board layout on the screen: a status line, then the bordered playground.
const (
	boardTop  = 1
	boardLeft = 0
)

// BoardSize returns the screen size needed to draw the whole board.
func (s *Session) BoardSize() core.Size {
	field := s.fieldCells()
	return core.NewSize(field.W+2, field.H+2+boardTop)
}

// Render draws the current state into dst, scaling pixels to cells with the
// configured cell size.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	field := s.fieldCells()
	border := core.NewRect(boardLeft, boardTop, field.W+2, field.H+2)
	dst.DrawBox(border, core.ColorGray)

	// Status line
	dst.DrawTextColored(0, 0, fmt.Sprintf("Score: %d", s.game.Score), core.ColorBrightWhite)
	status := s.game.Status.String()
	dst.DrawTextColored(border.Right()-len(status)-1, 0, status, core.ColorGray)

	// Paddle and ball, clipped to the playground interior
	cw, ch := s.cfg.Render.CellWidth, s.cfg.Render.CellHeight
	s.fill(dst, field, s.geometry.Paddle.Scale(cw, ch), PaddleChar, core.ColorCyan)
	s.fill(dst, field, s.BallBox().Scale(cw, ch), BallChar, core.ColorYellow)

	switch s.game.Status {
	case StatusStopped:
		dst.DrawTextColored(boardLeft+1+(field.W-len(startMessage))/2, boardTop+1+field.H*3/4, startMessage, core.ColorGreen)
	case StatusGameOver:
		drawCenteredMessage(dst, border, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.game.Score))
	}
}

const startMessage = "Press any key to start"

// fieldCells returns the playground size in cells.
func (s *Session) fieldCells() core.Size {
	return core.NewSize(
		s.geometry.Playground.W/s.cfg.Render.CellWidth,
		s.geometry.Playground.H/s.cfg.Render.CellHeight,
	)
}

// fill draws a cell rectangle given in playground coordinates, skipping cells
// outside the playground.
func (s *Session) fill(dst *core.Screen, field core.Size, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if x < 0 || x >= field.W || y < 0 || y >= field.H {
				continue
			}
			dst.SetColored(boardLeft+1+x, boardTop+1+y, ch, c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := area.X + (area.W-boxW)/2
	boxY := area.Y + (area.H-boxH)/2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
}
