// Package scales resolves position scales for plots.
//
// The concept of a scale is taken from ggplot2: a scale specifies how
// data values become positions on an axis, where the axis tick marks go
// and what their labels say. Package scales covers the position scales
// a plot built on gonum.org/v1/plot needs:
//   - Continuous    real numbers, optionally through a monotone
//                   transformation such as log or sqrt
//   - DateTime      instants, with breaks following the calendar
//   - Discrete      categories placed on 1, 2, ..., n
//   - Binned        a continuous range cut into intervals
//
// A Scale is configuration only. Feeding data through it with Resolve
// yields an immutable Resolved carrying the range, the expanded view,
// the breaks with their labels and the minor break positions. Resolving
// never mutates and never fails on data: values outside the
// transformation's domain or beyond fixed limits are dropped and
// counted, only impossible configurations are errors.
//
// A Resolved is a plot.Ticker, so wiring it to a gonum axis is
//
//	res, err := s.Resolve(data...)
//	...
//	res.ConfigureAxis(&plt.X)
//
// Faceted Plots
//
// A Grid holds the x and y scales of a rows x cols faceted plot. Columns
// share the x scale and rows the y scale unless freed; shared scales are
// resolved once over the union of the data of all their panels, so the
// panels agree on their axes.
package scales
