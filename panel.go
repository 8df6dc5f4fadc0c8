package scales

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is one cell of a resolved Grid. It holds the resolved x and y
// scales the cell is drawn with; panels sharing an axis hold the
// identical *Resolved.
type Panel struct {
	Row, Col int
	X, Y     *Resolved
}

// InRangeXY reports whether the data point (x, y) survives censoring on
// both scales.
func (p Panel) InRangeXY(x, y float64) bool {
	return p.X.InRange(x) && p.Y.InRange(y)
}

// Map maps the data coordinate (x, y) into the unit square: (0, 0) is
// the lower left corner of the panel's view, (1, 1) the upper right one.
// Censored coordinates map to NaN, check with InRangeXY before drawing.
func (p Panel) Map(x, y float64) (u, v float64) {
	return p.X.Map(x), p.Y.Map(y)
}

// MapXY maps the data coordinate (x, y) onto the canvas c.
func (p Panel) MapXY(x, y float64, c draw.Canvas) vg.Point {
	u, v := p.Map(x, y)
	size := c.Size()
	return vg.Point{
		X: c.Min.X + vg.Length(u)*size.X,
		Y: c.Min.Y + vg.Length(v)*size.Y,
	}
}
