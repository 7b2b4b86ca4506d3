package core

import "time"

// Fallbacks for when neither the terminal nor the flags say otherwise.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is everything a game learns from the platform on Reset.
// The same config and inputs always produce the same run.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 config at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

func (c RuntimeConfig) rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// Dt returns the length of one simulation tick in seconds.
func (c RuntimeConfig) Dt() float64 {
	return 1 / float64(c.rate())
}

// Interval returns the wall-clock time between ticks.
func (c RuntimeConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.rate())
}

// GameState is what the platform reads back after each step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
