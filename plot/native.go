package plot

import (
	"image/color"
	"path"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/skymaps/checkcls/compare"
)

// nativeRenderer draws the figure pair straight to PNG, with no python
// runtime needed.
type nativeRenderer struct{}

var (
	recovColor = color.RGBA{B: 255, A: 255}
	inputColor = color.RGBA{R: 255, A: 255}
)

func (r *nativeRenderer) Render(res compare.Result, opt Options) error {
	norm := compare.Norm(res.Ell)

	recovPts := make(plotter.XYs, len(res.Ell))
	inputPts := make(plotter.XYs, len(res.Ell))
	for i, l := range res.Ell {
		recovPts[i] = plotter.XY{X: l, Y: norm[i] * res.Recov[i]}
		inputPts[i] = plotter.XY{X: l, Y: norm[i] * res.Input[i]}
	}

	p := gplot.New()
	p.Title.Text = res.Field
	p.X.Label.Text = "ℓ"
	p.Y.Label.Text = "ℓ(ℓ+1) Cℓ"
	p.X.Scale, p.Y.Scale = gplot.LogScale{}, gplot.LogScale{}
	p.X.Tick.Marker = gplot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}

	recovLine, err := plotter.NewLine(recovPts)
	if err != nil {
		return err
	}
	recovLine.Color = recovColor
	recovLine.Width = vg.Points(2)

	inputLine, err := plotter.NewLine(inputPts)
	if err != nil {
		return err
	}
	inputLine.Color = inputColor
	inputLine.Width = vg.Points(2)

	p.Add(recovLine, inputLine)
	p.Legend.Add("Recov", recovLine)
	p.Legend.Add("Input", inputLine)
	p.Legend.Top = true

	fname := path.Join(opt.OutDir, res.Field+".png")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, fname); err != nil {
		return err
	}

	return r.renderFracErr(res, opt)
}

func (r *nativeRenderer) renderFracErr(res compare.Result, opt Options) error {
	pts := make(plotter.XYs, len(res.Ell))
	for i, l := range res.Ell {
		pts[i] = plotter.XY{X: l, Y: res.FracErr[i]}
	}

	p := gplot.New()
	p.Title.Text = res.Field
	p.X.Label.Text = "ℓ"
	p.Y.Label.Text = "Frac. Error %"
	p.Y.Min, p.Y.Max = -opt.FracErrLim, +opt.FracErrLim

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = recovColor
	line.Width = vg.Points(2)

	lo, hi := res.Ell[0], res.Ell[len(res.Ell)-1]
	zero, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return err
	}
	zero.Width = vg.Points(2)
	zero.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(line, zero)

	fname := path.Join(opt.OutDir, res.Field+"_fracerr.png")
	return p.Save(6*vg.Inch, 2*vg.Inch, fname)
}

func (r *nativeRenderer) Finish() error { return nil }
