package ntuple

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// TreeName is the name of the flat tree in ROOT outputs.
const TreeName = "tree"

// Writer appends rows to an output table.
type Writer interface {
	Write(row *Row) error
	Close() error
}

// Create opens a Writer for path. Files ending in .csv are written as CSV
// with a header line; all others as a ROOT file holding a flat tree.
func Create(path string) (Writer, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return createCSV(path)
	}
	return createROOT(path)
}

type rootWriter struct {
	f   *groot.File
	t   rtree.Writer
	row Row
	n   int64
}

func createROOT(path string) (*rootWriter, error) {
	f, err := groot.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create ROOT file: %w", err)
	}

	w := &rootWriter{f: f}
	w.t, err = rtree.NewWriter(f, TreeName, rtree.WriteVarsFromStruct(&w.row), rtree.WithTitle(TreeName))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not create tree %q: %w", TreeName, err)
	}
	return w, nil
}

func (w *rootWriter) Write(row *Row) error {
	w.row = *row
	if _, err := w.t.Write(); err != nil {
		return fmt.Errorf("could not write entry %d: %w", w.n, err)
	}
	w.n++
	return nil
}

func (w *rootWriter) Close() error {
	if err := w.t.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("could not close tree: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("could not close ROOT file: %w", err)
	}
	return nil
}

type csvWriter struct {
	f             *os.File
	buf           *bufio.Writer
	headerWritten bool
}

func createCSV(path string) (*csvWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create CSV file: %w", err)
	}
	return &csvWriter{f: f, buf: bufio.NewWriter(f)}, nil
}

func (w *csvWriter) Write(row *Row) error {
	records := []*Row{row}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.buf); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.buf); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func (w *csvWriter) Close() error {
	if !w.headerWritten {
		// keep the header so that empty outputs still carry the schema
		if err := gocsv.Marshal([]*Row{}, w.buf); err != nil {
			w.f.Close()
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("flushing CSV file: %w", err)
	}
	return w.f.Close()
}
