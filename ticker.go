package scales

import (
	"gonum.org/v1/plot"
)

var _ plot.Ticker = (*Resolved)(nil)

// Ticks makes a resolved scale a plot.Ticker: the breaks become major
// ticks, the minor break positions minor ones. The min and max arguments
// of the plot.Ticker interface are ignored, resolving fixed the ticks
// already.
func (r *Resolved) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(r.Breaks)+len(r.Minor))
	for _, b := range r.Breaks {
		label := b.Label
		if label == "" {
			// plot treats an empty label as a minor tick. A single
			// space keeps label-less majors at full length.
			label = " "
		}
		ticks = append(ticks, plot.Tick{Value: b.Pos, Label: label})
	}
	for _, m := range r.Minor {
		ticks = append(ticks, plot.Tick{Value: m})
	}
	return ticks
}

// ConfigureAxis points ax at the resolved view, title and ticks, so the
// axis renders exactly what Resolve computed. Axis positions are in
// transformed space, use Pos or Map to place the data.
func (r *Resolved) ConfigureAxis(ax *plot.Axis) {
	ax.Min, ax.Max = r.View.Min, r.View.Max
	ax.Tick.Marker = r
	if r.Title != "" {
		ax.Label.Text = r.Title
	}
}
