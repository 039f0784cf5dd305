package taueff

import (
	"fmt"
	"strconv"
	"strings"
)

// BinEdges is a flag.Value collecting strictly increasing histogram bin
// edges. It may be given once with a comma-separated list or repeated once
// per edge. The first use on the command line discards the default edges.
type BinEdges struct {
	Edges   []float64
	beenSet bool
}

func (b *BinEdges) Set(valueStr string) error {
	if !b.beenSet {
		b.beenSet = true
		b.Edges = nil
	}

	for _, field := range strings.Split(valueStr, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		if n := len(b.Edges); n > 0 && value <= b.Edges[n-1] {
			return fmt.Errorf("bin edge %v does not follow %v", value, b.Edges[n-1])
		}
		b.Edges = append(b.Edges, value)
	}
	return nil
}

func (b *BinEdges) String() string {
	if b == nil {
		return ""
	}
	fields := make([]string, len(b.Edges))
	for i, v := range b.Edges {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(fields, ",")
}
