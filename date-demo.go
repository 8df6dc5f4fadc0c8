// +build ignore

package main

import (
	"math/rand"
	"time"

	"github.com/vdobler/scales"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	// Daily measurements over one year.
	t := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	ts := make([]float64, 365)
	vs := make([]float64, 365)
	level := 20.0
	for i := range ts {
		ts[i] = scales.TimeValue(t)
		level += rand.NormFloat64()
		vs[i] = level
		t = t.AddDate(0, 0, 1)
	}

	xscale, err := scales.New(scales.DateTime,
		scales.WithTitle("2021"),
		scales.WithDateBreaks("1 month"))
	if err != nil {
		panic(err)
	}
	yscale, err := scales.New(scales.Continuous,
		scales.WithTitle("temperature"),
		scales.WithLabels(scales.LabelSI(1, "°C")))
	if err != nil {
		panic(err)
	}

	rx, err := xscale.Resolve(ts...)
	if err != nil {
		panic(err)
	}
	ry, err := yscale.Resolve(vs...)
	if err != nil {
		panic(err)
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Date scaling"
	rx.ConfigureAxis(&p.X)
	ry.ConfigureAxis(&p.Y)

	pts := make(plotter.XYs, len(ts))
	for i := range ts {
		pts[i].X, pts[i].Y = rx.Pos(ts[i]), ry.Pos(vs[i])
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		panic(err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, "testdata/date-00.png"); err != nil {
		panic(err)
	}
}
