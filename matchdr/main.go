// Command matchdr draws the distance between reconstructed taus and their
// matched generator-level tau and seeding jet.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/taueff"
	"github.com/decibelcooper/taueff/ntuple"
)

var (
	nBins  = flag.Int("nbins", 50, "number of bins")
	maxDR  = flag.Float64("maxdr", taueff.DefaultSeedMaxDR, "upper edge of the distance axis")
	output = flag.String("output", "match_dr.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <ntuple-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("matchdr: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	genHist := hbook.NewH1D(*nBins, 0, *maxDR)
	jetHist := hbook.NewH1D(*nBins, 0, *maxDR)

	err := ntuple.Scan(flag.Arg(0), func(row *ntuple.Row) error {
		if row.GenDR >= 0 {
			genHist.Fill(float64(row.GenDR), 1)
		}
		if row.JetDR >= 0 {
			jetHist.Fill(float64(row.JetDR), 1)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("could not read ntuple: %+v", err)
	}

	p := hplot.New()
	p.X.Label.Text = "delta R"
	p.Y.Label.Text = "entries"
	p.X.Tick.Marker = taueff.PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true

	for i, h := range []struct {
		label string
		hist  *hbook.H1D
	}{
		{"gen vis. tau", genHist},
		{"seed jet", jetHist},
	} {
		hPlot := hplot.NewH1D(h.hist)
		hPlot.FillColor = nil
		hPlot.Infos.Style = hplot.HInfoNone
		hPlot.LineStyle.Color = color.RGBA{R: 255, A: 255}
		if i == 1 {
			hPlot.LineStyle.Color = color.RGBA{B: 255, A: 255}
		}
		p.Add(hPlot)
		p.Legend.Add(h.label, hPlot)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatalf("could not save plot: %+v", err)
	}
}
