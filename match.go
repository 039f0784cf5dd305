package taueff

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCutoff is returned by BestMatch for a negative or NaN cutoff.
var ErrInvalidCutoff = errors.New("invalid argument: matching cutoff")

// Match is the candidate selected by BestMatch.
type Match struct {
	Index  int     // position in the candidate slice
	DeltaR float64 // distance from the query
}

// BestMatch returns the candidate closest to query among those strictly
// closer than maxDR. The scan keeps the first candidate found at a given
// distance, and a candidate sitting exactly at maxDR is never selected. The
// returned bool is false when nothing qualifies, including for an empty
// candidate set.
//
// Candidates with non-finite coordinates never match since their distance
// compares false against any threshold.
func BestMatch[T Positioned](query Positioned, candidates []T, maxDR float64) (Match, bool, error) {
	if maxDR < 0 || math.IsNaN(maxDR) {
		return Match{}, false, fmt.Errorf("%w: %v", ErrInvalidCutoff, maxDR)
	}

	best := Match{Index: -1, DeltaR: maxDR}
	for i, cand := range candidates {
		dR := DeltaR(query, cand)
		if !(dR < best.DeltaR) {
			continue
		}
		best.DeltaR = dR
		best.Index = i
	}

	if best.Index < 0 {
		return Match{}, false, nil
	}
	return best, true, nil
}
