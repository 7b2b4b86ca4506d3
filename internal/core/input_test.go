package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("a cleared frame should accept new actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionFire, "Fire"},
		{ActionSpecial2, "Special2"},
		{ActionPause, "Pause"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestRuntimeConfigTiming(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 || cfg.TickRate != 60 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if got := cfg.Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", got, time.Second/60)
	}

	cfg.TickRate = 30
	if got := cfg.Dt(); got != 1.0/30 {
		t.Errorf("Dt() = %v, expected 1/30", got)
	}

	cfg.TickRate = 0
	if got := cfg.Dt(); got != 1.0/60 {
		t.Errorf("Dt() with no rate = %v, expected the default", got)
	}
}
