package scales

import (
	"fmt"
)

// ----------------------------------------------------------------------------
// Grid

// A Grid holds the position scales of a faceted plot with rows x cols
// panels. All columns share the x scale and all rows share the y scale
// unless freed: free scales resolve each column (or row) over its own
// data only, shared ones resolve once over the union of the data of all
// panels, so shared axes agree across the whole plot.
type Grid struct {
	Rows, Cols   int
	FreeX, FreeY bool

	// X and Y are the scale configurations. A single configuration
	// serves all columns and rows, resolving is what differs.
	X, Y *Scale

	// RowLabels and ColLabels name the facet strips.
	RowLabels, ColLabels []string

	xvals, yvals [][]float64
	xcats, ycats [][]string
}

// NewGrid returns a grid of rows x cols panels using the given scale
// configurations. A nil scale defaults to a plain continuous one.
func NewGrid(rows, cols int, x, y *Scale, freeX, freeY bool) *Grid {
	if x == nil {
		x, _ = New(Continuous)
	}
	if y == nil {
		y, _ = New(Continuous)
	}
	return &Grid{
		Rows: rows, Cols: cols,
		FreeX: freeX, FreeY: freeY,
		X: x, Y: y,
		RowLabels: make([]string, rows),
		ColLabels: make([]string, cols),
		xvals:     make([][]float64, cols),
		yvals:     make([][]float64, rows),
		xcats:     make([][]string, cols),
		ycats:     make([][]string, rows),
	}
}

func (g *Grid) checkRow(row int) error {
	if row < 0 || row >= g.Rows {
		return fmt.Errorf("scales: row %d of a %dx%d grid", row, g.Rows, g.Cols)
	}
	return nil
}

func (g *Grid) checkCol(col int) error {
	if col < 0 || col >= g.Cols {
		return fmt.Errorf("scales: column %d of a %dx%d grid", col, g.Rows, g.Cols)
	}
	return nil
}

// Add records the data points of the panel at (row, col). A bad index
// records nothing, not even on the valid axis.
func (g *Grid) Add(row, col int, xs, ys []float64) error {
	if err := g.checkRow(row); err != nil {
		return err
	}
	if err := g.checkCol(col); err != nil {
		return err
	}
	g.xvals[col] = append(g.xvals[col], xs...)
	g.yvals[row] = append(g.yvals[row], ys...)
	return nil
}

// AddX records x data of the panels in the given column.
func (g *Grid) AddX(col int, xs ...float64) error {
	if err := g.checkCol(col); err != nil {
		return err
	}
	g.xvals[col] = append(g.xvals[col], xs...)
	return nil
}

// AddY records y data of the panels in the given row.
func (g *Grid) AddY(row int, ys ...float64) error {
	if err := g.checkRow(row); err != nil {
		return err
	}
	g.yvals[row] = append(g.yvals[row], ys...)
	return nil
}

// AddXCats records categorical x data for a discrete x scale.
func (g *Grid) AddXCats(col int, xs ...string) error {
	if err := g.checkCol(col); err != nil {
		return err
	}
	g.xcats[col] = append(g.xcats[col], xs...)
	return nil
}

// AddYCats records categorical y data for a discrete y scale.
func (g *Grid) AddYCats(row int, ys ...string) error {
	if err := g.checkRow(row); err != nil {
		return err
	}
	g.ycats[row] = append(g.ycats[row], ys...)
	return nil
}

// Resolve resolves the x scale of every column and the y scale of every
// row against the recorded data and returns the grid of panels. Panels
// sharing an axis share the identical *Resolved.
func (g *Grid) Resolve() ([][]Panel, error) {
	xs := make([]*Resolved, g.Cols)
	ys := make([]*Resolved, g.Rows)

	if g.FreeX {
		for c := range xs {
			r, err := resolveEither(g.X, g.xvals[c], g.xcats[c])
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", c, err)
			}
			xs[c] = r
		}
	} else {
		var vals []float64
		var cats []string
		for c := 0; c < g.Cols; c++ {
			vals = append(vals, g.xvals[c]...)
			cats = append(cats, g.xcats[c]...)
		}
		shared, err := resolveEither(g.X, vals, cats)
		if err != nil {
			return nil, err
		}
		for c := range xs {
			xs[c] = shared
		}
	}

	if g.FreeY {
		for r := range ys {
			res, err := resolveEither(g.Y, g.yvals[r], g.ycats[r])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			ys[r] = res
		}
	} else {
		var vals []float64
		var cats []string
		for r := 0; r < g.Rows; r++ {
			vals = append(vals, g.yvals[r]...)
			cats = append(cats, g.ycats[r]...)
		}
		shared, err := resolveEither(g.Y, vals, cats)
		if err != nil {
			return nil, err
		}
		for r := range ys {
			ys[r] = shared
		}
	}

	panels := make([][]Panel, g.Rows)
	for r := range panels {
		panels[r] = make([]Panel, g.Cols)
		for c := range panels[r] {
			panels[r][c] = Panel{Row: r, Col: c, X: xs[c], Y: ys[r]}
		}
	}
	return panels, nil
}

// resolveEither resolves numeric or categorical data, depending on the
// scale's kind.
func resolveEither(s *Scale, vals []float64, cats []string) (*Resolved, error) {
	if s.Kind() == Discrete {
		return s.ResolveDiscrete(cats...)
	}
	return s.Resolve(vals...)
}
