// Package lciosrc builds events from LCIO files. Tracks stand in for
// reconstructed candidates, stable charged MC particles for truth and
// reconstructed particles for seeds.
package lciosrc

import (
	"errors"
	"fmt"
	"io"
	"math"

	"go-hep.org/x/hep/lcio"

	"github.com/decibelcooper/taueff"
)

// Collections name the LCIO collections holding each category. A missing
// collection yields an empty category.
type Collections struct {
	Tracks string
	Truth  string
	Seeds  string
}

// Options configure how LCIO events are turned into taueff events.
type Options struct {
	Collections Collections
	BField      float64 // solenoid field in Tesla, for track pT
	MaxEvents   int64   // negative reads every event
}

// Source delivers the events of a single LCIO file.
type Source struct {
	reader *lcio.Reader
	opts   Options
}

// Open opens filename for reading. The magnetic field must be positive.
func Open(filename string, opts Options) (*Source, error) {
	if opts.BField <= 0 {
		return nil, fmt.Errorf("lciosrc: invalid magnetic field %v", opts.BField)
	}
	reader, err := lcio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("lciosrc: %w", err)
	}
	return &Source{reader: reader, opts: opts}, nil
}

// Close closes the underlying file.
func (s *Source) Close() error {
	return s.reader.Close()
}

// Scan delivers the events of the file in order. Reaching the end of the
// file is not an error.
func (s *Source) Scan(fn func(evt *taueff.Event) error) error {
	var nEvts int64
	for s.reader.Next() {
		if s.opts.MaxEvents >= 0 && nEvts >= s.opts.MaxEvents {
			break
		}
		lcEvt := s.reader.Event()

		evt := taueff.Event{
			Run:    uint32(lcEvt.RunNumber),
			Number: uint64(lcEvt.EventNumber),
		}
		s.fill(&evt, &lcEvt)

		if err := fn(&evt); err != nil {
			return err
		}
		nEvts++
	}
	if err := s.reader.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("lciosrc: %w", err)
	}
	return nil
}

func (s *Source) fill(evt *taueff.Event, lcEvt *lcio.Event) {
	colls := s.opts.Collections

	if tracks, ok := get(lcEvt, colls.Tracks).(*lcio.TrackContainer); ok {
		for i := range tracks.Tracks {
			evt.Candidates = append(evt.Candidates, taueff.Candidate{
				Kinematics: trackKinematics(&tracks.Tracks[i], s.opts.BField),
				Dxy:        float64(tracks.Tracks[i].D0()),
				Dz:         float64(tracks.Tracks[i].Z0()),
			})
		}
	}

	if mcps, ok := get(lcEvt, colls.Truth).(*lcio.McParticleContainer); ok {
		for _, mcp := range mcps.Particles {
			// only stable charged particles can leave a track
			if mcp.GenStatus != 1 || mcp.Charge == 0 {
				continue
			}
			evt.Truths = append(evt.Truths, taueff.Truth{
				Kinematics: taueff.FromMomentum(
					float64(mcp.P[0]), float64(mcp.P[1]), float64(mcp.P[2]),
					float64(mcp.Mass), int32(math.Round(float64(mcp.Charge))),
				),
				Status: int32(mcp.GenStatus),
			})
		}
	}

	if recs, ok := get(lcEvt, colls.Seeds).(*lcio.RecParticleContainer); ok {
		for _, rec := range recs.Parts {
			evt.Seeds = append(evt.Seeds, taueff.Seed{
				Kinematics: taueff.FromMomentum(
					float64(rec.P[0]), float64(rec.P[1]), float64(rec.P[2]),
					float64(rec.Mass), int32(math.Round(float64(rec.Charge))),
				),
			})
		}
	}
}

func get(evt *lcio.Event, name string) interface{} {
	if name == "" || !evt.Has(name) {
		return nil
	}
	return evt.Get(name)
}

// trackKinematics converts helix parameters (omega in 1/mm) into momentum.
func trackKinematics(trk *lcio.Track, bField float64) taueff.Kinematics {
	omega := float64(trk.Omega())
	pt := 0.299792458e-3 * bField / math.Abs(omega)
	phi := float64(trk.Phi())
	tanL := float64(trk.TanL())

	var charge int32
	switch {
	case omega > 0:
		charge = 1
	case omega < 0:
		charge = -1
	}

	k := taueff.FromMomentum(pt*math.Cos(phi), pt*math.Sin(phi), pt*tanL, 0, charge)
	k.Pt = pt
	return k
}
