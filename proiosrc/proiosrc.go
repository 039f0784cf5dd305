// Package proiosrc builds events from proio files using the EIC data model.
// Tracks stand in for reconstructed candidates and stable generator
// particles for truth.
package proiosrc

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"

	"github.com/decibelcooper/taueff"
)

// Tags name the proio entry tags holding each collection. Seeds may hold
// tracks or particles. An empty or missing tag yields an empty collection.
type Tags struct {
	Reco  string
	Truth string
	Seed  string
}

// Source delivers the events of a single proio file.
type Source struct {
	reader    *proio.Reader
	tags      Tags
	maxEvents int64
}

// Open opens filename for reading. A negative maxEvents reads the whole
// file.
func Open(filename string, tags Tags, maxEvents int64) (*Source, error) {
	reader, err := proio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("proiosrc: %w", err)
	}
	return &Source{reader: reader, tags: tags, maxEvents: maxEvents}, nil
}

// Close stops any running scan and closes the file.
func (s *Source) Close() error {
	s.reader.Close()
	return nil
}

// Scan delivers the events of the file in order. Event numbers count from
// zero since the EIC model carries no run bookkeeping. A read error that
// ends the file early is returned once the events read so far have been
// delivered.
func (s *Source) Scan(fn func(evt *taueff.Event) error) error {
	var (
		evt   taueff.Event
		nEvts int64
	)
	for event := range s.reader.ScanEvents() {
		if s.maxEvents >= 0 && nEvts >= s.maxEvents {
			break
		}

		evt = taueff.Event{Number: uint64(nEvts)}
		for _, k := range entries(event, s.tags.Reco) {
			evt.Candidates = append(evt.Candidates, taueff.Candidate{Kinematics: k})
		}
		for _, k := range entries(event, s.tags.Truth) {
			evt.Truths = append(evt.Truths, taueff.Truth{Kinematics: k, Status: 1})
		}
		for _, k := range entries(event, s.tags.Seed) {
			evt.Seeds = append(evt.Seeds, taueff.Seed{Kinematics: k})
		}

		if err := fn(&evt); err != nil {
			return err
		}
		nEvts++
	}

	select {
	case err := <-s.reader.Err:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("proiosrc: %w", err)
		}
	default:
	}
	return nil
}

// entries returns the kinematics of the tracks and particles tagged with tag.
// Tracks without segments and other entry types are skipped.
func entries(event *proio.Event, tag string) []taueff.Kinematics {
	if tag == "" {
		return nil
	}

	var ks []taueff.Kinematics
	for _, id := range event.TaggedEntries(tag) {
		switch entry := event.GetEntry(id).(type) {
		case *eic.Track:
			if len(entry.Segment) == 0 {
				continue
			}
			seg := entry.Segment[0]
			// p/q equals p for unit charges
			poq := seg.GetPoq()
			charge := int32(math.Round(float64(seg.GetChargesign())))
			ks = append(ks, taueff.FromMomentum(poq.GetX(), poq.GetY(), poq.GetZ(), 0, charge))
		case *eic.Particle:
			p := entry.GetP()
			charge := int32(math.Round(float64(entry.GetCharge())))
			ks = append(ks, taueff.FromMomentum(
				float64(p.GetX()), float64(p.GetY()), float64(p.GetZ()),
				float64(entry.GetMass()), charge,
			))
		}
	}
	return ks
}
