// Command tauiso draws the isolation efficiency of genuine taus, as a
// function of tau pT or of the number of good primary vertices, from
// ntuples written by readtaus.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/taueff"
	"github.com/decibelcooper/taueff/ntuple"
)

var (
	vs       = flag.String("vs", "pt", "x variable: pt or ngvtx")
	pTMin    = flag.Float64("minpt", 18, "minimum reconstructed tau pT")
	etaLimit = flag.Float64("etalimit", 2.3, "maximum absolute value of reconstructed tau eta")
	wp       = flag.Float64("wp", 6, "working point index of tau_idMVAnewDM2017v2 required in the numerator (6 = VTight)")
	level    = flag.Float64("cl", taueff.OneSigma, "confidence level of the efficiency intervals")
	title    = flag.String("title", "MVA 2017v2", "plot title")
	prefix   = flag.String("prefix", "tau_iso_eff", "output file prefix")
	edges    = &taueff.BinEdges{}
)

var (
	ptEdges    = []float64{0, 18, 20, 22, 24, 26, 28, 30, 35, 40, 50, 70, 200}
	ngvtxEdges = []float64{0, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38, 40, 42, 44, 50, 70}
)

func init() {
	flag.Var(edges, "edges", "comma-separated bin edges (default depends on -vs)")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <ntuple-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("tauiso: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	var (
		xLabel string
		xOf    func(row *ntuple.Row) float64
	)
	switch *vs {
	case "pt":
		xLabel = "reco tau p_T [GeV]"
		xOf = func(row *ntuple.Row) float64 { return float64(row.TauPt) }
		if edges.Edges == nil {
			edges.Edges = ptEdges
		}
	case "ngvtx":
		xLabel = "number of good PV"
		xOf = func(row *ntuple.Row) float64 { return float64(row.NGVtx) }
		if edges.Edges == nil {
			edges.Edges = ngvtxEdges
		}
	default:
		printUsage()
		log.Fatalf("invalid -vs value %q", *vs)
	}
	if len(edges.Edges) < 2 {
		log.Fatal("at least two bin edges are needed")
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "efficiency"
	p.Y.Min = 0
	p.Y.Max = 1
	p.X.Tick.Marker = taueff.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = taueff.PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true

	for i, filename := range flag.Args() {
		points, err := measure(filename, xOf)
		if err != nil {
			log.Fatalf("could not measure efficiency in %s: %+v", filename, err)
		}

		errPoints := errorPoints(points)
		xerr, err := plotter.NewXErrorBars(errPoints)
		if err != nil {
			log.Fatalf("could not create x error bars: %+v", err)
		}
		yerr, err := plotter.NewYErrorBars(errPoints)
		if err != nil {
			log.Fatalf("could not create y error bars: %+v", err)
		}

		pointColor := color.RGBA{R: 255, A: 255}
		switch i {
		case 1:
			pointColor = color.RGBA{G: 255, A: 255}
		case 2:
			pointColor = color.RGBA{B: 255, A: 255}
		case 3:
			pointColor = color.RGBA{A: 255}
		}
		xerr.LineStyle.Color = pointColor
		yerr.LineStyle.Color = pointColor

		p.Add(xerr, yerr)
		p.Legend.Add(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)), yerr)
	}

	for _, ext := range []string{".pdf", ".png"} {
		if err := p.Save(6*vg.Inch, 4*vg.Inch, *prefix+ext); err != nil {
			log.Fatalf("could not save plot: %+v", err)
		}
	}
}

// measure fills the numerator and denominator of the isolation efficiency.
// The denominator holds reconstructed taus matched to a visible generator
// tau within the kinematic acceptance; the numerator those passing the
// working point.
func measure(filename string, xOf func(row *ntuple.Row) float64) ([]taueff.EffPoint, error) {
	num := hbook.NewH1DFromEdges(edges.Edges)
	den := hbook.NewH1DFromEdges(edges.Edges)

	err := ntuple.Scan(filename, func(row *ntuple.Row) error {
		// unmatched taus carry ntuple.Unset in every gen column
		if row.GenPt < 0 {
			return nil
		}
		if float64(row.TauPt) <= *pTMin || math.Abs(float64(row.TauEta)) >= *etaLimit {
			return nil
		}

		x := xOf(row)
		den.Fill(x, 1)
		if float64(row.TauIDMVAnewDM2017v2) >= *wp {
			num.Fill(x, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return taueff.Efficiency(num, den, *level)
}

// errorPoints converts bins with a non-empty denominator into points with
// asymmetric vertical errors and horizontal errors spanning the bin.
func errorPoints(points []taueff.EffPoint) plotutil.ErrorPoints {
	var ep plotutil.ErrorPoints
	for _, pt := range points {
		if pt.Total == 0 {
			continue
		}
		mid := 0.5 * (pt.XLow + pt.XHigh)
		ep.XYs = append(ep.XYs, plotter.XY{X: mid, Y: pt.Eff})
		ep.XErrors = append(ep.XErrors, struct{ Low, High float64 }{mid - pt.XLow, pt.XHigh - mid})
		ep.YErrors = append(ep.YErrors, struct{ Low, High float64 }{pt.Eff - pt.Low, pt.High - pt.Eff})
	}
	return ep
}
