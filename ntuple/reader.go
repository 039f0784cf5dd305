package ntuple

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// Scan calls fn for every row stored in the table at path, in order. The
// format is chosen from the file extension as in Create. The Row passed to
// fn is reused between calls.
func Scan(path string, fn func(row *Row) error) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return scanCSV(path, fn)
	}
	return scanROOT(path, fn)
}

func scanROOT(path string, fn func(row *Row) error) error {
	f, err := groot.Open(path)
	if err != nil {
		return fmt.Errorf("could not open ROOT file: %w", err)
	}
	defer f.Close()

	o, err := f.Get(TreeName)
	if err != nil {
		return fmt.Errorf("could not retrieve tree %q: %w", TreeName, err)
	}
	t, ok := o.(rtree.Tree)
	if !ok {
		return fmt.Errorf("object %q is a %T, not a tree", TreeName, o)
	}

	var row Row
	r, err := rtree.NewReader(t, rtree.ReadVarsFromStruct(&row))
	if err != nil {
		return fmt.Errorf("could not create tree reader: %w", err)
	}
	defer r.Close()

	return r.Read(func(ctx rtree.RCtx) error {
		return fn(&row)
	})
}

func scanCSV(path string, fn func(row *Row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open CSV file: %w", err)
	}
	defer f.Close()

	return gocsv.UnmarshalToCallbackWithError(f, func(row Row) error {
		return fn(&row)
	})
}
