// Package nanoaod reads tau, visible generator tau and jet collections from
// CMS NanoAOD files.
package nanoaod

import (
	"fmt"

	"go-hep.org/x/hep/groot/rtree"

	"github.com/decibelcooper/taueff"
)

// DefaultTree is the name of the per-event tree in NanoAOD files.
const DefaultTree = "Events"

// Options control which part of the input is read.
type Options struct {
	Tree      string // defaults to DefaultTree
	MaxEvents int64  // negative reads every entry
}

// Source is a taueff.Source over the logical concatenation of the event
// trees of several files.
type Source struct {
	tree  rtree.Tree
	close func() error
	opts  Options
}

// Open chains the event trees of files.
func Open(files []string, opts Options) (*Source, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("nanoaod: no input files")
	}
	if opts.Tree == "" {
		opts.Tree = DefaultTree
	}

	t, closeFn, err := rtree.ChainOf(opts.Tree, files...)
	if err != nil {
		return nil, fmt.Errorf("nanoaod: could not chain %q trees: %w", opts.Tree, err)
	}
	return &Source{tree: t, close: closeFn, opts: opts}, nil
}

// Entries returns the number of events Scan will deliver.
func (s *Source) Entries() int64 {
	n := s.tree.Entries()
	if s.opts.MaxEvents >= 0 && s.opts.MaxEvents < n {
		n = s.opts.MaxEvents
	}
	return n
}

// Close closes every file of the chain.
func (s *Source) Close() error {
	return s.close()
}

// Scan delivers every entry as an Event. The Event and its slices are reused
// from one call of fn to the next.
func (s *Source) Scan(fn func(evt *taueff.Event) error) error {
	n := s.Entries()
	if n == 0 {
		return nil
	}

	var rec record
	r, err := rtree.NewReader(s.tree, rec.readVars(), rtree.WithRange(0, n))
	if err != nil {
		return fmt.Errorf("nanoaod: could not create reader: %w", err)
	}
	defer r.Close()

	var evt taueff.Event
	err = r.Read(func(ctx rtree.RCtx) error {
		rec.event(&evt)
		return fn(&evt)
	})
	if err != nil {
		return fmt.Errorf("nanoaod: %w", err)
	}
	return nil
}
