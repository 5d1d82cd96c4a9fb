package main

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/lininterp/interpolate"
)

// plotMargin is the fraction of the table's x range drawn on either side of
// it, so that clamping is visible.
const plotMargin = 0.1

// plotGrid returns n evenly spaced x values covering the active points of
// lin's table plus a margin, along with the interpolated values at them.
func plotGrid(lin *interpolate.Linear[float64, float64], n int) (xs, ys []float64) {
	pts := lin.Table().Window()
	lo, hi := pts[0].X, pts[len(pts)-1].X
	pad := (hi - lo) * plotMargin

	xs = vec.Linspace(lo-pad, hi+pad, n)
	return xs, lin.Values(xs)
}

func plotCurve(lin *interpolate.Linear[float64, float64], fname string, n int) {
	pts := lin.Table().Window()
	rawXs, rawYs := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		rawXs[i], rawYs[i] = p.X, p.Y
	}
	xs, ys := plotGrid(lin, n)

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Plot(rawXs, rawYs, "ok")
	plt.Title(fmt.Sprintf("%d active points", len(pts)))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
	plt.Execute()
}
