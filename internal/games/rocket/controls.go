package rocket

import (
	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// controls turns discrete key presses into held input. Terminals report
// key presses (and auto-repeat) but never key releases, so each press
// keeps its action active for a short hold window.
type controls struct {
	hold float64
	left map[core.Action]float64 // seconds of hold remaining per action
}

// held lists the actions that stay active between presses.
var held = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionFire,
}

func newControls(hold float64) *controls {
	return &controls{hold: hold, left: make(map[core.Action]float64, len(held))}
}

// update refreshes held actions from this frame's input and ages the rest.
func (c *controls) update(in core.InputFrame, dt float64) {
	for _, a := range held {
		if in.Has(a) {
			c.left[a] = c.hold
			continue
		}
		if c.left[a] > 0 {
			c.left[a] -= dt
		}
	}
}

// active reports whether a is currently held.
func (c *controls) active(a core.Action) bool {
	return c.left[a] > 0
}

// direction returns the unit steering vector, or zero when idle. Screen Y
// grows downward, so Up is -Y.
func (c *controls) direction() geom.Point {
	var d geom.Point
	if c.active(core.ActionLeft) {
		d.X--
	}
	if c.active(core.ActionRight) {
		d.X++
	}
	if c.active(core.ActionUp) {
		d.Y--
	}
	if c.active(core.ActionDown) {
		d.Y++
	}
	return d.Unit()
}

// reset releases everything.
func (c *controls) reset() {
	clear(c.left)
}
