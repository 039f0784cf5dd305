package taueff

import "fmt"

// Default matching cutoffs in (eta, phi) distance.
const (
	DefaultTruthMaxDR = 0.3
	DefaultSeedMaxDR  = 0.5
)

// Matcher associates every reconstructed candidate of an event with its
// closest truth object and its closest seed. The two searches are
// independent of each other.
type Matcher struct {
	TruthMaxDR float64
	SeedMaxDR  float64
}

// CandidateMatch holds the outcome of both searches for one candidate.
// A nil field means no match was found.
type CandidateMatch struct {
	Truth *Match
	Seed  *Match
}

// MatchEvent returns one CandidateMatch per entry of evt.Candidates.
func (m Matcher) MatchEvent(evt *Event) ([]CandidateMatch, error) {
	matches := make([]CandidateMatch, len(evt.Candidates))
	for i, cand := range evt.Candidates {
		truth, ok, err := BestMatch(cand, evt.Truths, m.TruthMaxDR)
		if err != nil {
			return nil, fmt.Errorf("truth matching: %w", err)
		}
		if ok {
			matches[i].Truth = &truth
		}

		seed, ok, err := BestMatch(cand, evt.Seeds, m.SeedMaxDR)
		if err != nil {
			return nil, fmt.Errorf("seed matching: %w", err)
		}
		if ok {
			matches[i].Seed = &seed
		}
	}
	return matches, nil
}
