package headless

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	hitStyle    = cellStyle.Foreground(lipgloss.Color("10"))
)

// TableSink collects frames and prints them as a table.
type TableSink struct {
	every  int
	frames []Frame
}

// NewTableSink keeps every n-th frame plus any frame with a hit or a status
// change. n below 1 keeps every frame.
func NewTableSink(n int) *TableSink {
	if n < 1 {
		n = 1
	}
	return &TableSink{every: n}
}

// Write implements Sink.
func (s *TableSink) Write(f Frame) error {
	keep := f.Tick%s.every == 0 || f.Hit
	if n := len(s.frames); n > 0 && s.frames[n-1].Status != f.Status {
		keep = true
	}
	if keep {
		s.frames = append(s.frames, f)
	}
	return nil
}

// Frames returns the kept frames.
func (s *TableSink) Frames() []Frame {
	return s.frames
}

// Render prints the kept frames to w.
func (s *TableSink) Render(w io.Writer) error {
	rows := make([][]string, 0, len(s.frames))
	for _, f := range s.frames {
		hit := ""
		if f.Hit {
			hit = "hit"
		}
		rows = append(rows, []string{
			strconv.Itoa(f.Tick),
			fmt.Sprintf("%d,%d", f.Ball.X, f.Ball.Y),
			fmt.Sprintf("%+d,%+d", f.Ball.DirX, f.Ball.DirY),
			strconv.Itoa(f.PaddleLeft),
			strconv.Itoa(f.Score),
			f.Status.String(),
			hit,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("tick", "ball", "dir", "paddle", "score", "status", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][6] != "":
				return hitStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
