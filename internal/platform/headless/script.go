// Package headless drives a racket session without a terminal UI: input comes
// from a scripted list of key events and every tick is reported to a Sink.
package headless

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-racket/internal/core"
	"github.com/vovakirdan/tui-racket/internal/games/racket"
)

// KeyEvent presses or releases a key before the given tick runs.
type KeyEvent struct {
	Tick int    `yaml:"tick"`
	Key  string `yaml:"key"` // "left", "right", "space" or a numeric key code
	Up   bool   `yaml:"up"`
}

// Script is an ordered list of key events.
type Script struct {
	Events []KeyEvent `yaml:"events"`
}

var namedKeys = map[string]core.KeyCode{
	"left":  racket.KeyLeft,
	"right": racket.KeyRight,
	"space": 32,
	"enter": 13,
}

// Code resolves the event's key to a key code.
func (e KeyEvent) Code() (core.KeyCode, error) {
	name := strings.ToLower(strings.TrimSpace(e.Key))
	if code, ok := namedKeys[name]; ok {
		return code, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q", e.Key)
	}
	return core.KeyCode(n), nil
}

// ParseScript decodes and checks a YAML script. Events are sorted by tick,
// keeping file order within a tick.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, e := range s.Events {
		if e.Tick < 0 {
			return Script{}, fmt.Errorf("event %d: negative tick %d", i, e.Tick)
		}
		if _, err := e.Code(); err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i, err)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Tick < s.Events[j].Tick
	})
	return s, nil
}

// LoadScript reads a YAML script from disk.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// byTick groups events by the tick they apply to.
func (s Script) byTick() map[int][]KeyEvent {
	out := make(map[int][]KeyEvent)
	for _, e := range s.Events {
		out[e.Tick] = append(out[e.Tick], e)
	}
	return out
}
