package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplineReproducesSamples(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 2, 5, 4}

	sp, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatal(err.Error())
	}

	for i := range xs {
		assert.InDelta(t, ys[i], sp.Eval(xs[i]), 1e-12, "at sample point")
	}
}

func TestSplineLinearData(t *testing.T) {
	// A natural spline through samples of a line is that line exactly.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 3
	}

	sp, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatal(err.Error())
	}

	for x := 0.0; x <= 5.0; x += 0.25 {
		assert.InDelta(t, 2*x+3, sp.Eval(x), 1e-10)
	}
}

func TestSplineQuadraticInterior(t *testing.T) {
	xs := make([]float64, 21)
	ys := make([]float64, 21)
	for i := range xs {
		xs[i] = float64(i) * 0.5
		ys[i] = xs[i] * xs[i]
	}

	sp, err := NewSpline(xs, ys)
	if err != nil {
		t.Fatal(err.Error())
	}

	// Natural boundary conditions distort the ends, so only check the
	// interior.
	for x := 2.0; x <= 8.0; x += 0.1 {
		assert.InDelta(t, x*x, sp.Eval(x), 1e-2)
	}
}

func TestSplineTwoPoints(t *testing.T) {
	sp, err := NewSpline([]float64{0, 10}, []float64{5, 15})
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.InDelta(t, 10.0, sp.Eval(5), 1e-12, "linear between two samples")
}

func TestSplineBadTables(t *testing.T) {
	_, err := NewSpline([]float64{0, 1, 2}, []float64{0, 1})
	assert.Error(t, err, "mismatched lengths")

	_, err = NewSpline([]float64{0}, []float64{0})
	assert.Error(t, err, "too short")

	_, err = NewSpline([]float64{0, 2, 1}, []float64{0, 1, 2})
	assert.Error(t, err, "unsorted")

	_, err = NewSpline([]float64{0, 1, 1}, []float64{0, 1, 2})
	assert.Error(t, err, "duplicate x")
}
