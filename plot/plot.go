// Package plot renders the comparison figures. Two backends are available:
// "pyplot" generates a matplotlib script and hands it to python, which also
// allows showing the figures interactively, and "native" renders PNGs
// directly with gonum.
package plot

import (
	"fmt"

	"github.com/skymaps/checkcls/compare"
)

// Options controls where and how the figures are rendered.
type Options struct {
	// OutDir is the folder the figures are saved into.
	OutDir string
	// Show displays the figures interactively as well. Only the pyplot
	// backend can do this.
	Show bool
	// FracErrLim clamps the fractional error panel to +-FracErrLim percent.
	FracErrLim float64
}

// A Renderer draws one figure pair (spectra + fractional error) per
// comparison result. Finish must be called once after the last Render.
type Renderer interface {
	Render(res compare.Result, opt Options) error
	Finish() error
}

// NewRenderer returns the renderer for the named backend.
func NewRenderer(backend string) (Renderer, error) {
	switch backend {
	case "pyplot":
		return &pyplotRenderer{}, nil
	case "native":
		return &nativeRenderer{}, nil
	}
	return nil, fmt.Errorf(
		"unknown plot backend '%s': must be 'pyplot' or 'native'", backend,
	)
}
