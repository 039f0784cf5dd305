package taueff

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// along returns positions at the given distances from the origin along eta.
func along(dists ...float64) []Position {
	ps := make([]Position, len(dists))
	for i, d := range dists {
		ps[i] = Pos(d, 0)
	}
	return ps
}

func TestBestMatch(t *testing.T) {
	origin := Pos(0, 0)
	approx := cmpopts.EquateApprox(0, 1e-12)

	tests := []struct {
		name       string
		query      Position
		candidates []Position
		maxDR      float64
		want       Match
		wantOK     bool
	}{
		{
			name:       "closest below cutoff",
			query:      origin,
			candidates: along(0.5, 0.2, 0.8),
			maxDR:      0.6,
			want:       Match{Index: 1, DeltaR: 0.2},
			wantOK:     true,
		},
		{
			name:       "nothing below cutoff",
			query:      origin,
			candidates: along(0.5, 0.7),
			maxDR:      0.3,
		},
		{
			name:       "exactly at cutoff",
			query:      origin,
			candidates: along(0.25),
			maxDR:      0.25,
		},
		{
			name:       "at cutoff after a closer one",
			query:      origin,
			candidates: along(0.1, 0.25),
			maxDR:      0.25,
			want:       Match{Index: 0, DeltaR: 0.1},
			wantOK:     true,
		},
		{
			name:       "first of equal distances wins",
			query:      origin,
			candidates: []Position{Pos(0, 0.2), Pos(0.2, 0), Pos(0, -0.2)},
			maxDR:      0.3,
			want:       Match{Index: 0, DeltaR: 0.2},
			wantOK:     true,
		},
		{
			name:       "later closer candidate replaces earlier",
			query:      origin,
			candidates: along(0.2, 0.15, 0.1, 0.12),
			maxDR:      0.3,
			want:       Match{Index: 2, DeltaR: 0.1},
			wantOK:     true,
		},
		{
			// -3.1 is already inside (-pi, pi], so the second candidate
			// sits 3.1 away and the first one wins.
			name:       "no spurious wrap near pi",
			query:      origin,
			candidates: []Position{Pos(0, 0.1), Pos(0, -3.1)},
			maxDR:      0.3,
			want:       Match{Index: 0, DeltaR: 0.1},
			wantOK:     true,
		},
		{
			name:       "wrap around pi",
			query:      Pos(0, math.Pi-0.05),
			candidates: []Position{Pos(0, math.Pi-0.2), Pos(0, -math.Pi+0.05)},
			maxDR:      0.3,
			want:       Match{Index: 1, DeltaR: 0.1},
			wantOK:     true,
		},
		{
			name:       "zero cutoff",
			query:      origin,
			candidates: along(0),
			maxDR:      0,
		},
		{
			name:       "non-finite candidates skipped",
			query:      origin,
			candidates: []Position{Pos(math.NaN(), 0), Pos(0, math.Inf(-1)), Pos(0.1, 0)},
			maxDR:      0.3,
			want:       Match{Index: 2, DeltaR: 0.1},
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := BestMatch(tt.query, tt.candidates, tt.maxDR)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("BestMatch() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBestMatchBoundaryFromDistance(t *testing.T) {
	query := Pos(0.1, -0.4)
	cand := Pos(0.3, -0.2)

	cutoff := DeltaR(query, cand)
	_, ok, err := BestMatch(query, []Position{cand}, cutoff)
	require.NoError(t, err)
	assert.False(t, ok, "a candidate exactly at the cutoff must not match")

	m, ok, err := BestMatch(query, []Position{cand}, math.Nextafter(cutoff, math.Inf(1)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Match{Index: 0, DeltaR: cutoff}, m)
}

func TestBestMatchEmpty(t *testing.T) {
	for _, maxDR := range []float64{0, 0.3, 10, math.Inf(1)} {
		_, ok, err := BestMatch(Pos(1, 2), []Position(nil), maxDR)
		require.NoError(t, err)
		assert.False(t, ok, "maxDR=%v", maxDR)

		_, ok, err = BestMatch(Pos(1, 2), []Truth{}, maxDR)
		require.NoError(t, err)
		assert.False(t, ok, "maxDR=%v", maxDR)
	}
}

func TestBestMatchInvalidCutoff(t *testing.T) {
	for _, maxDR := range []float64{-0.1, math.Inf(-1), math.NaN()} {
		_, ok, err := BestMatch(Pos(0, 0), along(0.1), maxDR)
		assert.ErrorIs(t, err, ErrInvalidCutoff, "maxDR=%v", maxDR)
		assert.False(t, ok)
	}
}

func TestBestMatchObjects(t *testing.T) {
	jets := []Seed{
		{Kinematics: Kinematics{Position: Pos(1.2, 0.4), Pt: 40}},
		{Kinematics: Kinematics{Position: Pos(0.1, 0.1), Pt: 22}},
	}
	tau := Candidate{Kinematics: Kinematics{Position: Pos(0, 0), Pt: 20}}

	m, ok, err := BestMatch(tau, jets, DefaultSeedMaxDR)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, m.Index)
	assert.InDelta(t, math.Sqrt(0.02), m.DeltaR, 1e-12)
}
