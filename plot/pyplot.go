package plot

import (
	"fmt"
	"path"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/skymaps/checkcls/compare"
)

// pyplotRenderer accumulates a matplotlib script, one figure pair per
// result, and runs it once in Finish.
type pyplotRenderer struct {
	show bool
}

func (r *pyplotRenderer) Render(res compare.Result, opt Options) error {
	r.show = r.show || opt.Show
	norm := compare.Norm(res.Ell)

	normRecov := make([]float64, len(res.Ell))
	normInput := make([]float64, len(res.Ell))
	for i := range res.Ell {
		normRecov[i] = norm[i] * res.Recov[i]
		normInput[i] = norm[i] * res.Input[i]
	}

	plt.Figure()
	plt.Plot(res.Ell, normRecov, "b", plt.LW(2))
	plt.Plot(res.Ell, normInput, "r", plt.LW(2))
	plt.Title(fmt.Sprintf("%s (blue = Recov; red = Input)", res.Field))
	plt.XLabel(`$\ell$`, plt.FontSize(16))
	plt.YLabel(`$\ell(\ell + 1)C_\ell$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(path.Join(opt.OutDir, res.Field+".png"))

	lo, hi := res.Ell[0], res.Ell[len(res.Ell)-1]
	plt.Figure()
	plt.Plot(res.Ell, res.FracErr, "b", plt.LW(2))
	plt.Plot([]float64{lo, hi}, []float64{0, 0}, "k", plt.LW(2))
	plt.Title(res.Field)
	plt.XLabel(`$\ell$`, plt.FontSize(16))
	plt.YLabel(`Frac. Error $\%$`, plt.FontSize(16))
	plt.YLim(-opt.FracErrLim, +opt.FracErrLim)
	plt.SaveFig(path.Join(opt.OutDir, res.Field+"_fracerr.png"))

	return nil
}

func (r *pyplotRenderer) Finish() error {
	if r.show {
		plt.Show()
	}
	plt.Execute()
	return nil
}
