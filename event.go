package taueff

import "math"

// Kinematics holds the direction and momentum of a physics object.
type Kinematics struct {
	Position
	Pt     float64
	Mass   float64
	Charge int32
}

// Candidate is a reconstructed tau candidate.
type Candidate struct {
	Kinematics

	Dxy, Dz   float64
	DecayMode int32

	ChargedIso               float64
	NeutralIso               float64
	PuCorr                   float64
	PhotonsOutsideSignalCone float64
	LeadTkDeltaEta           float64
	LeadTkDeltaPhi           float64
	LeadTkPtOverTauPt        float64

	RawAntiEle        float64
	RawAntiEleCat     int32
	RawIso            float64
	RawMVAnewDM2017v2 float64
	IDAntiEle         uint8 // bitmask, one bit per working point
	IDAntiMu          uint8
	IDMVAnewDM2017v2  uint8

	GenPartIdx  int32
	GenPartFlav uint8
}

// Truth is a generator-level visible tau.
type Truth struct {
	Kinematics
	Status int32
}

// Seed is a reconstructed jet a candidate may have been built from.
type Seed struct {
	Kinematics
}

// Event is one collision with its object collections. Any of the
// collections may be empty.
type Event struct {
	Run      uint32
	Lumi     uint32
	Number   uint64
	NGoodVtx int32
	Rho      float64

	Candidates []Candidate
	Truths     []Truth
	Seeds      []Seed
}

// Source delivers events one at a time to fn, in file order. Scanning stops
// at the first error returned by fn.
type Source interface {
	Scan(fn func(evt *Event) error) error
	Close() error
}

// FromMomentum returns the kinematics of an object with the given momentum
// components.
func FromMomentum(px, py, pz, mass float64, charge int32) Kinematics {
	pt := math.Hypot(px, py)
	p := math.Hypot(pt, pz)
	return Kinematics{
		Position: Pos(math.Atanh(pz/p), math.Atan2(py, px)),
		Pt:       pt,
		Mass:     mass,
		Charge:   charge,
	}
}
