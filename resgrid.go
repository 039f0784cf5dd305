package taueff

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// ResGrid accumulates a response variable in 2D bins and reports its spread
// per bin. It implements plotter.GridXYZ for heat maps.
type ResGrid struct {
	hCount, hV, hV2 *hbook.H2D
	nBinsX, nBinsY  int

	// MinEntries is the number of entries below which a bin reports
	// Empty instead of a spread.
	MinEntries float64
	Empty      float64
}

func NewResGrid(nBinsX int, xLow, xHigh float64, nBinsY int, yLow, yHigh float64) *ResGrid {
	return &ResGrid{
		hCount:     hbook.NewH2D(nBinsX, xLow, xHigh, nBinsY, yLow, yHigh),
		hV:         hbook.NewH2D(nBinsX, xLow, xHigh, nBinsY, yLow, yHigh),
		hV2:        hbook.NewH2D(nBinsX, xLow, xHigh, nBinsY, yLow, yHigh),
		nBinsX:     nBinsX,
		nBinsY:     nBinsY,
		MinEntries: 3,
		Empty:      math.NaN(),
	}
}

func (g *ResGrid) Fill(x, y, z float64) {
	g.hCount.Fill(x, y, 1)
	g.hV.Fill(x, y, z)
	g.hV2.Fill(x, y, z*z)
}

func (g *ResGrid) Dims() (int, int) {
	return g.nBinsX, g.nBinsY
}

// Z returns the standard deviation of the values filled in bin (i, j).
func (g *ResGrid) Z(i, j int) float64 {
	n := g.hCount.GridXYZ().Z(i, j)
	if n < g.MinEntries || n == 0 {
		return g.Empty
	}
	mean := g.hV.GridXYZ().Z(i, j) / n
	mean2 := g.hV2.GridXYZ().Z(i, j) / n

	return math.Sqrt(math.Max(mean2-mean*mean, 0))
}

func (g *ResGrid) X(i int) float64 {
	return g.hCount.GridXYZ().X(i)
}

func (g *ResGrid) Y(j int) float64 {
	return g.hCount.GridXYZ().Y(j)
}
