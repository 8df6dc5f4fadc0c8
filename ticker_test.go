package scales

import (
	"testing"

	"gonum.org/v1/plot"
)

func TestTicks(t *testing.T) {
	s := mustScale(t, Continuous, WithLimits(0, 10), WithExpansion(ExpandNone()))
	r := mustResolve(t, s)

	ticks := r.Ticks(0, 0) // arguments are ignored
	var major, minor int
	for _, tk := range ticks {
		if tk.IsMinor() {
			minor++
		} else {
			major++
		}
	}
	if major != 5 {
		t.Errorf("got %d major ticks, want 5", major)
	}
	if minor != 4 {
		t.Errorf("got %d minor ticks, want 4", minor)
	}
	if ticks[0].Value != 0 || ticks[0].Label != "0.0" {
		t.Errorf("first tick = %+v, want 0.0 at 0", ticks[0])
	}
}

// Label-less majors must not degrade to minor ticks, which gonum/plot
// detects by an empty label.
func TestTicksUnlabelled(t *testing.T) {
	s := mustScale(t, Continuous,
		WithLimits(0, 10), WithExpansion(ExpandNone()), WithoutLabels())
	r := mustResolve(t, s)

	for _, tk := range r.Ticks(0, 0) {
		if tk.Label == " " {
			continue // a blank major
		}
		if !tk.IsMinor() {
			t.Errorf("tick %+v neither blank major nor minor", tk)
		}
	}
	var majors int
	for _, tk := range r.Ticks(0, 0) {
		if !tk.IsMinor() {
			majors++
		}
	}
	if majors != 5 {
		t.Errorf("got %d major ticks, want 5", majors)
	}
}

func TestConfigureAxis(t *testing.T) {
	s := mustScale(t, Continuous, WithTitle("price"), WithLimits(0, 10))
	r := mustResolve(t, s)

	var ax plot.Axis
	r.ConfigureAxis(&ax)

	if ax.Min != r.View.Min || ax.Max != r.View.Max {
		t.Errorf("axis [%g, %g], want view %v", ax.Min, ax.Max, r.View)
	}
	if ax.Tick.Marker != plot.Ticker(r) {
		t.Error("tick marker not the resolved scale")
	}
	if ax.Label.Text != "price" {
		t.Errorf("axis label = %q, want price", ax.Label.Text)
	}

	// Without a title the label is left alone.
	s = mustScale(t, Continuous)
	r = mustResolve(t, s, 1, 2)
	ax.Label.Text = "keep"
	r.ConfigureAxis(&ax)
	if ax.Label.Text != "keep" {
		t.Errorf("axis label = %q, want keep", ax.Label.Text)
	}
}
