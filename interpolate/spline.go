package interpolate

import (
	"fmt"
	"log"
)

// Spline is a natural cubic spline through a table of (x, y) samples. It
// fills the same role as scipy's order-3 InterpolatedUnivariateSpline:
// smooth interpolation passing through every sample.
type Spline struct {
	xs, ys, y2s []float64

	// Estimate of the sample spacing, used to seed the interval search.
	dx float64
}

// NewSpline creates a spline from a table of x and y values. xs must be
// sorted in increasing order.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"spline table has len(xs) = %d but len(ys) = %d",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		return nil, fmt.Errorf("spline table has length %d", len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf(
				"spline table not sorted at index %d: %g >= %g",
				i, xs[i], xs[i+1],
			)
		}
	}

	sp := &Spline{
		xs:  make([]float64, len(xs)),
		ys:  make([]float64, len(ys)),
		y2s: make([]float64, len(xs)),
		dx:  (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1),
	}
	copy(sp.xs, xs)
	copy(sp.ys, ys)
	sp.calcY2s()

	return sp, nil
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	n := len(sp.xs)
	if x < sp.xs[0] || x > sp.xs[n-1] {
		log.Fatalf("Point %g given to Spline.Eval() out of bounds [%g, %g].",
			x, sp.xs[0], sp.xs[n-1])
	}

	i := sp.bsearch(x)
	h := sp.xs[i+1] - sp.xs[i]
	a := (sp.xs[i+1] - x) / h
	b := (x - sp.xs[i]) / h
	return a*sp.ys[i] + b*sp.ys[i+1] +
		((a*a*a-a)*sp.y2s[i]+(b*b*b-b)*sp.y2s[i+1])*h*h/6
}

// bsearch returns the index of the largest element of xs which is smaller
// than x.
func (sp *Spline) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		sp.xs[guess] <= x && sp.xs[guess+1] >= x {

		return guess
	}

	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s computes the second derivative of the spline at every sample.
// Natural boundary conditions: the second derivative vanishes at both ends
// and the interior values come from a tridiagonal system.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

// triDiagAt solves a tridiagonal system with the Thomas algorithm. as, bs,
// and cs hold the sub-, main-, and super-diagonals, rs the right hand side.
// The solution is written to out.
func triDiagAt(as, bs, cs, rs, out []float64) {
	n := len(bs)
	if len(as) != n || len(cs) != n || len(rs) != n || len(out) != n {
		log.Fatal("Lengths of arguments to triDiagAt are unequal.")
	}

	cps := make([]float64, n)
	cps[0] = cs[0] / bs[0]
	out[0] = rs[0] / bs[0]
	for i := 1; i < n; i++ {
		m := bs[i] - as[i]*cps[i-1]
		if m == 0 {
			log.Fatal("triDiagAt cannot solve the given system.")
		}
		cps[i] = cs[i] / m
		out[i] = (rs[i] - as[i]*out[i-1]) / m
	}
	for i := n - 2; i >= 0; i-- {
		out[i] -= cps[i] * out[i+1]
	}
}
