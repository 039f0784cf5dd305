// Command taures draws the spread of reco/gen pT of truth-matched taus as a
// heat map in bins of generator-level eta and pT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/decibelcooper/taueff"
	"github.com/decibelcooper/taueff/ntuple"
)

var (
	pTMin    = flag.Float64("minpt", 18, "minimum generator-level pT")
	pTMax    = flag.Float64("maxpt", 100, "maximum generator-level pT")
	etaLimit = flag.Float64("etalimit", 2.3, "maximum absolute value of generator-level eta")
	resLimit = flag.Float64("reslimit", 0.3, "maximum pT resolution in the color map")
	nBinsPT  = flag.Int("nbinspt", 8, "number of bins in pT")
	nBinsEta = flag.Int("nbinseta", 10, "number of bins in eta")
	title    = flag.String("title", "", "plot title")
	output   = flag.String("output", "tau_pt_res.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <ntuple-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("taures: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	resGrid := taueff.NewResGrid(*nBinsEta, -*etaLimit, *etaLimit, *nBinsPT, *pTMin, *pTMax)

	err := ntuple.Scan(flag.Arg(0), func(row *ntuple.Row) error {
		if row.GenPt <= 0 {
			return nil
		}
		resGrid.Fill(float64(row.GenEta), float64(row.GenPt), float64(row.TauPt/row.GenPt))
		return nil
	})
	if err != nil {
		log.Fatalf("could not read ntuple: %+v", err)
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = "gen eta"
	p.Y.Label.Text = "gen p_T [GeV]"
	p.X.Tick.Marker = taueff.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = taueff.PreciseTicks{NSuggestedTicks: 5}

	img := vgimg.New(670, 400)
	dc := draw.New(img)
	dc0 := draw.Crop(dc, 0, -70, 0, 0)
	dc1 := draw.Crop(dc, 620, 0, 0, 0)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(0)
	colorMap.SetMax(*resLimit)
	heatMap := plotter.NewHeatMap(resGrid, colorMap.Palette(1000))
	heatMap.Min = 0
	heatMap.Max = *resLimit
	p.Add(heatMap)

	p.Draw(dc0)

	bar := hplot.New()
	colorBar := &plotter.ColorBar{ColorMap: colorMap}
	colorBar.Vertical = true
	bar.Add(colorBar)
	bar.HideX()
	bar.Y.Padding = 0

	bar.Draw(dc1)

	w, err := os.Create(*output)
	if err != nil {
		log.Fatalf("could not create output: %+v", err)
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		log.Fatalf("could not write image: %+v", err)
	}
}
