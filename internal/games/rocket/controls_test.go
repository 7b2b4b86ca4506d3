package rocket

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-rocket/internal/core"
)

func TestControlsHoldWindow(t *testing.T) {
	c := newControls(0.1)
	dt := 1.0 / 60

	c.update(frame(core.ActionFire), dt)
	if !c.active(core.ActionFire) {
		t.Fatalf("Fire should be active right after a press")
	}

	for range 5 {
		c.update(core.NewInputFrame(), dt)
	}
	if !c.active(core.ActionFire) {
		t.Errorf("Fire should stay active inside the hold window")
	}

	for range 5 {
		c.update(core.NewInputFrame(), dt)
	}
	if c.active(core.ActionFire) {
		t.Errorf("Fire should release after the hold window")
	}
}

func TestControlsDirection(t *testing.T) {
	c := newControls(0.1)
	if d := c.direction(); d.X != 0 || d.Y != 0 {
		t.Errorf("Idle direction should be zero, got %v", d)
	}

	c.update(frame(core.ActionUp, core.ActionRight), 1.0/60)
	d := c.direction()
	if math.Abs(d.Magnitude()-1) > 1e-12 {
		t.Errorf("Diagonal should be normalized, got %v", d)
	}
	if d.X <= 0 || d.Y >= 0 {
		t.Errorf("Up-right should point to +X and -Y, got %v", d)
	}

	c.update(frame(core.ActionLeft), 1.0/60)
	if d := c.direction(); d.Y >= 0 || d.X != 0 {
		t.Errorf("Left cancels right while up is held, got %v", d)
	}

	c.reset()
	if c.active(core.ActionUp) || c.active(core.ActionLeft) {
		t.Errorf("Reset should release everything")
	}
}
