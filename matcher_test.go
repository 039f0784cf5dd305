package taueff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kin(eta, phi, pt float64) Kinematics {
	return Kinematics{Position: Pos(eta, phi), Pt: pt}
}

func TestMatcherMatchEvent(t *testing.T) {
	evt := &Event{
		Candidates: []Candidate{
			{Kinematics: kin(0, 0, 30)},
			{Kinematics: kin(1.5, 2, 25)},
			{Kinematics: kin(-2, -3.1, 20)},
		},
		Truths: []Truth{
			{Kinematics: kin(0.05, 0.05, 28)},
			{Kinematics: kin(-2, 3.1, 19)},
		},
		Seeds: []Seed{
			{Kinematics: kin(1.5, 2.4, 40)},
			{Kinematics: kin(0.2, -0.1, 35)},
		},
	}

	m := Matcher{TruthMaxDR: DefaultTruthMaxDR, SeedMaxDR: DefaultSeedMaxDR}
	matches, err := m.MatchEvent(evt)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// first candidate matches both categories
	require.NotNil(t, matches[0].Truth)
	assert.Equal(t, 0, matches[0].Truth.Index)
	assert.InDelta(t, math.Sqrt(0.005), matches[0].Truth.DeltaR, 1e-12)
	require.NotNil(t, matches[0].Seed)
	assert.Equal(t, 1, matches[0].Seed.Index)

	// 0.4 away from the first seed: inside the seed cutoff, and no truth
	// object close by
	assert.Nil(t, matches[1].Truth)
	require.NotNil(t, matches[1].Seed)
	assert.Equal(t, 0, matches[1].Seed.Index)
	assert.InDelta(t, 0.4, matches[1].Seed.DeltaR, 1e-12)

	// truth match across the phi boundary, no seed
	require.NotNil(t, matches[2].Truth)
	assert.Equal(t, 1, matches[2].Truth.Index)
	assert.InDelta(t, 2*math.Pi-6.2, matches[2].Truth.DeltaR, 1e-12)
	assert.Nil(t, matches[2].Seed)
}

func TestMatcherIndependentCutoffs(t *testing.T) {
	// same object offered as truth and seed, between the two cutoffs
	evt := &Event{
		Candidates: []Candidate{{Kinematics: kin(0, 0, 20)}},
		Truths:     []Truth{{Kinematics: kin(0.4, 0, 20)}},
		Seeds:      []Seed{{Kinematics: kin(0.4, 0, 20)}},
	}

	matches, err := Matcher{TruthMaxDR: 0.3, SeedMaxDR: 0.5}.MatchEvent(evt)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Truth)
	assert.NotNil(t, matches[0].Seed)
}

func TestMatcherEmptyEvent(t *testing.T) {
	matches, err := Matcher{TruthMaxDR: 0.3, SeedMaxDR: 0.5}.MatchEvent(&Event{})
	require.NoError(t, err)
	assert.Empty(t, matches)

	evt := &Event{Candidates: []Candidate{{Kinematics: kin(0, 0, 20)}}}
	matches, err = Matcher{TruthMaxDR: 0.3, SeedMaxDR: 0.5}.MatchEvent(evt)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, CandidateMatch{}, matches[0])
}

func TestMatcherInvalidCutoff(t *testing.T) {
	evt := &Event{Candidates: []Candidate{{Kinematics: kin(0, 0, 20)}}}

	_, err := Matcher{TruthMaxDR: -1, SeedMaxDR: 0.5}.MatchEvent(evt)
	assert.ErrorIs(t, err, ErrInvalidCutoff)

	_, err = Matcher{TruthMaxDR: 0.3, SeedMaxDR: -1}.MatchEvent(evt)
	assert.ErrorIs(t, err, ErrInvalidCutoff)
}

func TestFromMomentum(t *testing.T) {
	k := FromMomentum(3, 4, 0, 1.777, -1)
	assert.InDelta(t, 5, k.Pt, 1e-12)
	assert.InDelta(t, 0, k.Eta(), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), k.Phi(), 1e-12)
	assert.Equal(t, 1.777, k.Mass)
	assert.Equal(t, int32(-1), k.Charge)

	// pz = pt sinh(eta)
	k = FromMomentum(0, -2, 2*math.Sinh(1.2), 0, 0)
	assert.InDelta(t, 2, k.Pt, 1e-12)
	assert.InDelta(t, 1.2, k.Eta(), 1e-9)
	assert.InDelta(t, -math.Pi/2, k.Phi(), 1e-12)
}
