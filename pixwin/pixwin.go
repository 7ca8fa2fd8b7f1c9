package pixwin

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phil-mansfield/table"
)

// Window is the HEALPix pixel window function for one NSIDE, read from a
// two-column (l, w_l) table. The tables themselves come from the HEALPix
// distribution (healpy's pixwin values dumped to text) and are treated as a
// black box here.
type Window struct {
	NSide int
	ells  []float64
	ws    []float64
}

// FileName returns the name of the pixel window table for the given NSIDE,
// e.g. pixel_window_n0512.dat.
func FileName(nside int) string {
	return fmt.Sprintf("pixel_window_n%04d.dat", nside)
}

// Load reads the pixel window table for the given NSIDE from dir.
func Load(dir string, nside int) (*Window, error) {
	fname := filepath.Join(dir, FileName(nside))
	if _, err := os.Stat(fname); err != nil {
		return nil, fmt.Errorf(
			"cannot find the pixel window table %s: dump the HEALPix "+
				"window for NSIDE = %d there, or switch the correction off",
			fname, nside,
		)
	}

	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("the pixel window table %s is empty", fname)
	}
	// Squared indexes into the table by offset from the first multipole,
	// which only works on a unit-step grid.
	first := cols[0][0]
	for i, l := range cols[0] {
		if l != first+float64(i) {
			return nil, fmt.Errorf(
				"the pixel window table %s does not list its multipoles "+
					"contiguously: row %d holds l = %g, expected %g",
				fname, i, l, first+float64(i),
			)
		}
	}

	return &Window{NSide: nside, ells: cols[0], ws: cols[1]}, nil
}

// Squared returns w_l^2 on the inclusive unit-step multipole grid
// [ellMin, ellMax]. The table must cover the requested range and list its
// multipoles contiguously.
func (w *Window) Squared(ellMin, ellMax int) ([]float64, error) {
	first := int(w.ells[0])
	last := int(w.ells[len(w.ells)-1])
	if ellMin < first || ellMax > last {
		return nil, fmt.Errorf(
			"the pixel window table for NSIDE = %d covers [%d, %d], "+
				"but [%d, %d] was requested",
			w.NSide, first, last, ellMin, ellMax,
		)
	}

	out := make([]float64, ellMax-ellMin+1)
	for i := range out {
		wl := w.ws[ellMin-first+i]
		out[i] = wl * wl
	}
	return out, nil
}

// Ones returns a unit correction of length n, used when the simulation was
// run without the pixel window function.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
