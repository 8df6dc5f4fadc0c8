// +build ignore

package main

import (
	"fmt"
	"math/rand"

	"github.com/vdobler/scales"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const dim = 4 * vg.Inch

func main() {
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	x := 10.0
	for i := range xs {
		xs[i] = x + rand.NormFloat64()*x/10
		ys[i] = float64(i) + 2*rand.NormFloat64()
		x *= 1.2
	}

	xscale, err := scales.New(scales.Continuous,
		scales.WithTitle("price"),
		scales.WithTrans(scales.Log10Trans))
	if err != nil {
		panic(err)
	}
	yscale, err := scales.New(scales.Continuous,
		scales.WithTitle("rank"))
	if err != nil {
		panic(err)
	}

	rx, err := xscale.Resolve(xs...)
	if err != nil {
		panic(err)
	}
	ry, err := yscale.Resolve(ys...)
	if err != nil {
		panic(err)
	}
	fmt.Println(rx)
	fmt.Println(ry)
	if n := rx.Drops.Total(); n > 0 {
		fmt.Println(n, "x values dropped")
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Log scaling"
	rx.ConfigureAxis(&p.X)
	ry.ConfigureAxis(&p.Y)

	pts := plotter.XYs{}
	for i := range xs {
		if !rx.InRange(xs[i]) || !ry.InRange(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: rx.Pos(xs[i]), Y: ry.Pos(ys[i])})
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		panic(err)
	}
	p.Add(sc)

	if err := p.Save(1.5*dim, dim, "testdata/scale-00.png"); err != nil {
		panic(err)
	}
}
