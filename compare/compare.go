package compare

import (
	"fmt"

	"github.com/skymaps/checkcls/cls"
	"github.com/skymaps/checkcls/interpolate"
	"github.com/skymaps/checkcls/pixwin"
)

// Result is the comparison of one recovered spectrum against its input, both
// resampled onto a common multipole grid. Recov is pixel-window corrected
// but not normalized; the l(l+1) convention is applied at plot time.
type Result struct {
	Field        string
	Ell          []float64
	Recov, Input []float64
	// FracErr is (Input/Recov - 1) * 100 at every multipole.
	FracErr []float64
}

// Fields returns the sorted spectrum names present in both datasets.
func Fields(recov, input *cls.Spectra) []string {
	fields := []string{}
	for _, k := range recov.Fields() {
		if _, ok := input.Cls[k]; ok {
			fields = append(fields, k)
		}
	}
	return fields
}

// Norm returns the conventional l(l+1) power spectrum normalization on the
// given grid.
func Norm(ells []float64) []float64 {
	out := make([]float64, len(ells))
	for i, l := range ells {
		out[i] = l * (l + 1)
	}
	return out
}

// Compare resamples every spectrum present in both datasets onto the
// inclusive integer grid [ellMin, ellMax] and computes the fractional error
// of the recovered spectrum against the input one. pixWin2 is the squared
// pixel window correction on that same grid; pass nil when the simulation
// was run without the window function.
func Compare(
	recov, input *cls.Spectra, pixWin2 []float64, ellMin, ellMax float64,
) ([]Result, error) {
	ells := cls.EllGrid(ellMin, ellMax)
	if pixWin2 == nil {
		pixWin2 = pixwin.Ones(len(ells))
	}
	if len(pixWin2) != len(ells) {
		return nil, fmt.Errorf(
			"pixel window correction has %d values, but the comparison "+
				"grid has %d multipoles", len(pixWin2), len(ells),
		)
	}

	results := []Result{}
	for _, field := range Fields(recov, input) {
		splRecov, err := interpolate.NewSpline(recov.L, recov.Cls[field])
		if err != nil {
			return nil, fmt.Errorf("recovered %s: %v", field, err)
		}
		splInput, err := interpolate.NewSpline(input.L, input.Cls[field])
		if err != nil {
			return nil, fmt.Errorf("input %s: %v", field, err)
		}

		res := Result{
			Field:   field,
			Ell:     ells,
			Recov:   make([]float64, len(ells)),
			Input:   make([]float64, len(ells)),
			FracErr: make([]float64, len(ells)),
		}
		for i, l := range ells {
			res.Recov[i] = splRecov.Eval(l) / pixWin2[i]
			res.Input[i] = splInput.Eval(l)
			res.FracErr[i] = (res.Input[i]/res.Recov[i] - 1) * 100
		}
		results = append(results, res)
	}

	return results, nil
}
