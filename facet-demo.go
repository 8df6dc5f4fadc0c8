// +build ignore

package main

import (
	"math/rand"
	"os"

	"github.com/vdobler/scales"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	xscale, err := scales.New(scales.Continuous, scales.WithTitle("dose"))
	if err != nil {
		panic(err)
	}
	yscale, err := scales.New(scales.Continuous,
		scales.WithTitle("response"),
		scales.WithMin(0))
	if err != nil {
		panic(err)
	}

	// Two rows share the y scale, the three columns have free x scales.
	g := scales.NewGrid(2, 3, xscale, yscale, true, false)
	g.RowLabels[0], g.RowLabels[1] = "control", "treated"
	g.ColLabels[0], g.ColLabels[1], g.ColLabels[2] = "site A", "site B", "site C"

	data := make([][]plotter.XYs, 2)
	for row := range data {
		data[row] = make([]plotter.XYs, 3)
		for col := range data[row] {
			n := 20 + rand.Intn(20)
			pts := make(plotter.XYs, n)
			scale := float64(col + 1)
			for i := range pts {
				pts[i].X = rand.Float64() * 10 * scale
				pts[i].Y = pts[i].X * float64(row+1) / scale * (1 + 0.2*rand.NormFloat64())
			}
			data[row][col] = pts
			xs := make([]float64, n)
			ys := make([]float64, n)
			for i, p := range pts {
				xs[i], ys[i] = p.X, p.Y
			}
			if err := g.Add(row, col, xs, ys); err != nil {
				panic(err)
			}
		}
	}

	panels, err := g.Resolve()
	if err != nil {
		panic(err)
	}

	plots := make([][]*plot.Plot, g.Rows)
	for row := range plots {
		plots[row] = make([]*plot.Plot, g.Cols)
		for col := range plots[row] {
			panel := panels[row][col]
			p, err := plot.New()
			if err != nil {
				panic(err)
			}
			p.Title.Text = g.ColLabels[col] + " / " + g.RowLabels[row]
			panel.X.ConfigureAxis(&p.X)
			panel.Y.ConfigureAxis(&p.Y)

			pts := plotter.XYs{}
			for _, d := range data[row][col] {
				if !panel.InRangeXY(d.X, d.Y) {
					continue
				}
				pts = append(pts, plotter.XY{X: panel.X.Pos(d.X), Y: panel.Y.Pos(d.Y)})
			}
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				panic(err)
			}
			p.Add(sc)
			plots[row][col] = p
		}
	}

	img := vgimg.New(900, 600)
	dc := draw.New(img)
	canvases := plot.Align(plots, draw.Tiles{Rows: g.Rows, Cols: g.Cols}, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	w, err := os.Create("testdata/facet.png")
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
