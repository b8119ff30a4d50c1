package config

import (
	_ "embed"
)

//go:embed defaults/racket.yaml
var defaultRacketYAML []byte

// DefaultRacketConfig returns the default racket configuration.
// It mirrors defaults/racket.yaml and is used if the embedded file is unreadable.
func DefaultRacketConfig() RacketConfig {
	return RacketConfig{
		Ball: BallConfig{
			Speed: 5,
			X:     135,
			Y:     100,
			DirX:  -1,
			DirY:  -1,
			Size:  10,
		},
		Paddle: PaddleConfig{
			X:      100,
			Y:      190,
			Width:  70,
			Height: 10,
			Step:   5,
		},
		Playground: PlaygroundConfig{
			Width:  300,
			Height: 200,
		},
		Loop: LoopConfig{
			IntervalMS:     16,
			FirstHoldTicks: 40,
			HoldTicks:      8,
		},
		Render: RenderConfig{
			CellWidth:  5,
			CellHeight: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacketYAML
}
