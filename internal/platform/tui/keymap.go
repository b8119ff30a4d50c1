package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racket/internal/core"
	"github.com/vovakirdan/tui-racket/internal/games/racket"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Reset, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Reset, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "move right"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyOther is the code for keys without a browser key code of their own.
// It never equals a movement code.
const keyOther core.KeyCode = 0

// KeyCode translates a key message into the numeric code the game sees.
// Only the movement bindings map to the arrow codes. Letters, digits and a
// few named keys get their browser key code; anything else is keyOther, so
// every key can still start the game.
func (k KeyMap) KeyCode(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.Left):
		return racket.KeyLeft
	case key.Matches(msg, k.Right):
		return racket.KeyRight
	}

	switch msg.Type {
	case tea.KeyUp:
		return 38
	case tea.KeyDown:
		return 40
	case tea.KeySpace:
		return 32
	case tea.KeyEnter:
		return 13
	case tea.KeyEsc:
		return 27
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			r := unicode.ToUpper(msg.Runes[0])
			if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return core.KeyCode(r)
			}
		}
	}
	return keyOther
}
