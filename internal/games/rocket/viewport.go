package rocket

import (
	"math"

	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/entity"
	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// viewport maps world coordinates to screen cells. One world unit is one
// column; one row is aspect units tall. The top hud rows are not part of
// the field.
type viewport struct {
	field  core.Rect // screen cells showing the field
	aspect float64
}

func newViewport(screenW, screenH, hud int, aspect float64) viewport {
	return viewport{field: core.NewRect(0, hud, screenW, screenH-hud), aspect: aspect}
}

// bounds returns the size of the field in world units.
func (v viewport) bounds() entity.Bounds {
	rows := max(v.field.H, 1)
	return entity.Bounds{W: float64(v.field.W), H: float64(rows) * v.aspect}
}

// toCell returns the screen cell containing p.
func (v viewport) toCell(p geom.Point) (int, int) {
	return v.field.X + int(math.Floor(p.X)), v.field.Y + int(math.Floor(p.Y/v.aspect))
}

// cellCentre returns the world point at the middle of a screen cell.
func (v viewport) cellCentre(x, y int) geom.Point {
	return geom.Pt(float64(x-v.field.X)+0.5, (float64(y-v.field.Y)+0.5)*v.aspect)
}

// cells returns the inclusive range of field cells overlapping b.
func (v viewport) cells(b geom.Box) (x0, y0, x1, y1 int) {
	x0, y0 = v.toCell(b.Min)
	x1, y1 = v.toCell(b.Max)
	x0 = core.Clamp(x0, v.field.X, v.field.Right()-1)
	x1 = core.Clamp(x1, v.field.X, v.field.Right()-1)
	y0 = core.Clamp(y0, v.field.Y, v.field.Bottom()-1)
	y1 = core.Clamp(y1, v.field.Y, v.field.Bottom()-1)
	return x0, y0, x1, y1
}

// fill draws glyph on every cell whose centre lies inside s.
func (v viewport) fill(dst *core.Screen, s geom.Shape, glyph rune, color core.Color) {
	x0, y0, x1, y1 := v.cells(s.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.ContainsPoint(v.cellCentre(x, y)) {
				dst.SetWithColor(x, y, glyph, color)
			}
		}
	}
}

// line draws a segment by sampling it at half-unit steps.
func (v viewport) line(dst *core.Screen, s geom.Segment, glyph rune, color core.Color) {
	steps := int(math.Ceil(s.Length()*2)) + 1
	d := s.Direction()
	for i := 0; i <= steps; i++ {
		x, y := v.toCell(s.A.Add(d.Scale(float64(i) / float64(steps))))
		v.plotCell(dst, x, y, glyph, color)
	}
}

// plot draws glyph on the cell containing p.
func (v viewport) plot(dst *core.Screen, p geom.Point, glyph rune, color core.Color) {
	x, y := v.toCell(p)
	v.plotCell(dst, x, y, glyph, color)
}

// plotCell draws on a cell unless it falls outside the field.
func (v viewport) plotCell(dst *core.Screen, x, y int, glyph rune, color core.Color) {
	if !v.field.Contains(x, y) {
		return
	}
	dst.SetWithColor(x, y, glyph, color)
}
