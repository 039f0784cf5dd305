// Command readtaus loops over events, matches every reconstructed tau to the
// closest generator-level visible tau and to its seeding jet, and writes a
// flat ntuple with one entry per reconstructed tau.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/decibelcooper/taueff"
	"github.com/decibelcooper/taueff/config"
	"github.com/decibelcooper/taueff/lciosrc"
	"github.com/decibelcooper/taueff/nanoaod"
	"github.com/decibelcooper/taueff/ntuple"
	"github.com/decibelcooper/taueff/proiosrc"
)

var (
	cfgPath   = flag.String("config", "", "YAML configuration file (defaults are built in)")
	format    = flag.String("format", config.FormatNanoAOD, "input format: nanoaod, proio or lcio")
	output    = flag.String("o", "tau_tuple.root", "output ntuple (.root or .csv)")
	maxEvents = flag.Int64("maxevents", -1, "events to process, -1 processes all events")
	logFreq   = flag.Int64("logfreq", 100, "print processing status every N events")
	truthDR   = flag.Float64("truthdr", taueff.DefaultTruthMaxDR, "maximum distance for a truth match")
	seedDR    = flag.Float64("seeddr", taueff.DefaultSeedMaxDR, "maximum distance for a seed match")
	doProfile = flag.Bool("profile", false, "write a CPU profile to the working directory")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <input-files>...

ex:
 $> readtaus -o dy_tuple.root -maxevents 100000 -logfreq 1000 dy/*.root

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("readtaus: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *doProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("could not load configuration: %+v", err)
	}

	src, nEvts, err := openSource(cfg, flag.Args())
	if err != nil {
		log.Fatalf("could not open input: %+v", err)
	}
	defer src.Close()

	w, err := ntuple.Create(cfg.Run.Output)
	if err != nil {
		log.Fatalf("could not create output: %+v", err)
	}

	matcher := taueff.Matcher{
		TruthMaxDR: cfg.Matching.TruthMaxDR,
		SeedMaxDR:  cfg.Matching.SeedMaxDR,
	}
	progress := newProgress(nEvts, cfg.Run.LogFreq)

	var (
		row   ntuple.Row
		nRows int64
	)
	err = src.Scan(func(evt *taueff.Event) error {
		progress.event()

		matches, err := matcher.MatchEvent(evt)
		if err != nil {
			return fmt.Errorf("event %d: %w", evt.Number, err)
		}
		for i, m := range matches {
			row.Fill(evt, i, m)
			if err := w.Write(&row); err != nil {
				return err
			}
			nRows++
		}
		return nil
	})
	if err != nil {
		w.Close()
		log.Fatalf("could not process events: %+v", err)
	}

	if err := w.Close(); err != nil {
		log.Fatalf("could not close output: %+v", err)
	}

	cfgOut := snapshotPath(cfg.Run.Output, *cfgPath)
	if err := cfg.WriteYAML(cfgOut); err != nil {
		log.Printf("could not save configuration: %+v", err)
	}

	log.Printf("processed %d events, wrote %d entries to %s", progress.n, nRows, cfg.Run.Output)
}

// snapshotPath returns where the configuration used for output is saved,
// next to output and never on top of the configuration file that was read.
func snapshotPath(output, cfgPath string) string {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	path := base + ".yaml"
	if cfgPath != "" && filepath.Clean(path) == filepath.Clean(cfgPath) {
		path = base + ".cfg.yaml"
	}
	return path
}

// loadConfig reads the configuration file, then applies the flags given
// explicitly on the command line.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Source.Format = *format
		case "o":
			cfg.Run.Output = *output
		case "maxevents":
			cfg.Run.MaxEvents = *maxEvents
		case "logfreq":
			cfg.Run.LogFreq = *logFreq
		case "truthdr":
			cfg.Matching.TruthMaxDR = *truthDR
		case "seeddr":
			cfg.Matching.SeedMaxDR = *seedDR
		}
	})

	return cfg, cfg.Validate()
}

// openSource returns the event source and the number of events it will
// deliver, or -1 when that is not known in advance.
func openSource(cfg *config.Config, files []string) (taueff.Source, int64, error) {
	switch cfg.Source.Format {
	case config.FormatNanoAOD:
		src, err := nanoaod.Open(files, nanoaod.Options{
			Tree:      cfg.Source.NanoAOD.Tree,
			MaxEvents: cfg.Run.MaxEvents,
		})
		if err != nil {
			return nil, 0, err
		}
		return src, src.Entries(), nil

	case config.FormatProio, config.FormatLCIO:
		if len(files) != 1 {
			return nil, 0, fmt.Errorf("%s input takes exactly one file (got %d)", cfg.Source.Format, len(files))
		}
		if cfg.Source.Format == config.FormatProio {
			src, err := proiosrc.Open(files[0], proiosrc.Tags{
				Reco:  cfg.Source.Proio.RecoTag,
				Truth: cfg.Source.Proio.TruthTag,
				Seed:  cfg.Source.Proio.SeedTag,
			}, cfg.Run.MaxEvents)
			if err != nil {
				return nil, 0, err
			}
			return src, -1, nil
		}
		src, err := lciosrc.Open(files[0], lciosrc.Options{
			Collections: lciosrc.Collections{
				Tracks: cfg.Source.LCIO.Tracks,
				Truth:  cfg.Source.LCIO.Truth,
				Seeds:  cfg.Source.LCIO.Seeds,
			},
			BField:    cfg.Source.LCIO.BField,
			MaxEvents: cfg.Run.MaxEvents,
		})
		if err != nil {
			return nil, 0, err
		}
		return src, -1, nil
	}
	return nil, 0, fmt.Errorf("unknown format %q", cfg.Source.Format)
}

type progress struct {
	n, total, freq int64
	start          time.Time
}

func newProgress(total, freq int64) *progress {
	return &progress{total: total, freq: freq, start: time.Now()}
}

func (p *progress) event() {
	defer func() { p.n++ }()
	if p.n%p.freq != 0 {
		return
	}

	speed := float64(p.n) / time.Since(p.start).Seconds()
	if p.total < 0 {
		log.Printf("===> processing event %d \t %.1f ev/s", p.n, speed)
		return
	}

	percentage := float64(p.n) / float64(p.total) * 100
	remaining := time.Duration(float64(p.total-p.n) / max(0.1, speed) * float64(time.Second))
	eta := time.Now().Add(remaining)
	log.Printf("===> processing %d / %d event \t completed %.1f%% \t %.1f ev/s \t ETA %s",
		p.n, p.total, percentage, speed, eta.Format("2006-01-02 15:04:05"))
}
