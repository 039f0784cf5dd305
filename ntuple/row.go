// Package ntuple defines the flat per-candidate table written by readtaus
// and read back by the plotting commands.
package ntuple

import (
	"math"

	"github.com/decibelcooper/taueff"
)

// Unset is the value of every column that could not be filled, such as the
// truth columns of a candidate without a truth match.
const Unset = -99

// Row is one reconstructed tau candidate together with its event and its
// matched truth and seed objects. All columns are float32.
type Row struct {
	// event
	Run   float32 `groot:"run" csv:"run"`
	Lumi  float32 `groot:"lumi" csv:"lumi"`
	Event float32 `groot:"event" csv:"event"`
	NGVtx float32 `groot:"ngvtx" csv:"ngvtx"`
	Rho   float32 `groot:"rho" csv:"rho"`

	// reconstructed candidate
	TauPt                       float32 `groot:"tau_pt" csv:"tau_pt"`
	TauEta                      float32 `groot:"tau_eta" csv:"tau_eta"`
	TauPhi                      float32 `groot:"tau_phi" csv:"tau_phi"`
	TauMass                     float32 `groot:"tau_mass" csv:"tau_mass"`
	TauDxy                      float32 `groot:"tau_dxy" csv:"tau_dxy"`
	TauDz                       float32 `groot:"tau_dz" csv:"tau_dz"`
	TauCharge                   float32 `groot:"tau_charge" csv:"tau_charge"`
	TauDecayMode                float32 `groot:"tau_decayMode" csv:"tau_decayMode"`
	TauChargedIso               float32 `groot:"tau_chargedIso" csv:"tau_chargedIso"`
	TauLeadTkDeltaEta           float32 `groot:"tau_leadTkDeltaEta" csv:"tau_leadTkDeltaEta"`
	TauLeadTkDeltaPhi           float32 `groot:"tau_leadTkDeltaPhi" csv:"tau_leadTkDeltaPhi"`
	TauLeadTkPtOverTauPt        float32 `groot:"tau_leadTkPtOverTauPt" csv:"tau_leadTkPtOverTauPt"`
	TauNeutralIso               float32 `groot:"tau_neutralIso" csv:"tau_neutralIso"`
	TauPhotonsOutsideSignalCone float32 `groot:"tau_photonsOutsideSignalCone" csv:"tau_photonsOutsideSignalCone"`
	TauPuCorr                   float32 `groot:"tau_puCorr" csv:"tau_puCorr"`
	TauRawAntiEle               float32 `groot:"tau_rawAntiEle" csv:"tau_rawAntiEle"`
	TauRawIso                   float32 `groot:"tau_rawIso" csv:"tau_rawIso"`
	TauRawMVAnewDM2017v2        float32 `groot:"tau_rawMVAnewDM2017v2" csv:"tau_rawMVAnewDM2017v2"`
	TauRawAntiEleCat            float32 `groot:"tau_rawAntiEleCat" csv:"tau_rawAntiEleCat"`
	TauIDAntiEle                float32 `groot:"tau_idAntiEle" csv:"tau_idAntiEle"`
	TauIDAntiMu                 float32 `groot:"tau_idAntiMu" csv:"tau_idAntiMu"`
	TauIDMVAnewDM2017v2         float32 `groot:"tau_idMVAnewDM2017v2" csv:"tau_idMVAnewDM2017v2"`
	TauGenPartIdx               float32 `groot:"tau_genPartIdx" csv:"tau_genPartIdx"`
	TauGenPartFlav              float32 `groot:"tau_genPartFlav" csv:"tau_genPartFlav"`

	// matched generator-level visible tau
	GenPt        float32 `groot:"tau_gen_pt" csv:"tau_gen_pt"`
	GenEta       float32 `groot:"tau_gen_eta" csv:"tau_gen_eta"`
	GenPhi       float32 `groot:"tau_gen_phi" csv:"tau_gen_phi"`
	GenMass      float32 `groot:"tau_gen_mass" csv:"tau_gen_mass"`
	GenCharge    float32 `groot:"tau_gen_charge" csv:"tau_gen_charge"`
	GenDecayMode float32 `groot:"tau_gen_decayMode" csv:"tau_gen_decayMode"`
	GenDR        float32 `groot:"tau_gen_dR" csv:"tau_gen_dR"`

	// matched seeding jet
	JetPt   float32 `groot:"tau_jet_pt" csv:"tau_jet_pt"`
	JetEta  float32 `groot:"tau_jet_eta" csv:"tau_jet_eta"`
	JetPhi  float32 `groot:"tau_jet_phi" csv:"tau_jet_phi"`
	JetMass float32 `groot:"tau_jet_mass" csv:"tau_jet_mass"`
	JetDR   float32 `groot:"tau_jet_dR" csv:"tau_jet_dR"`
}

// Reset sets every column to Unset.
func (r *Row) Reset() {
	*r = Row{
		Unset, Unset, Unset, Unset, Unset,

		Unset, Unset, Unset, Unset, Unset, Unset, Unset, Unset,
		Unset, Unset, Unset, Unset, Unset, Unset, Unset, Unset,
		Unset, Unset, Unset, Unset, Unset, Unset, Unset, Unset,

		Unset, Unset, Unset, Unset, Unset, Unset, Unset,

		Unset, Unset, Unset, Unset, Unset,
	}
}

// Fill resets r and fills it from candidate i of evt and its matches.
func (r *Row) Fill(evt *taueff.Event, i int, m taueff.CandidateMatch) {
	r.Reset()

	r.Run = float32(evt.Run)
	r.Lumi = float32(evt.Lumi)
	r.Event = float32(evt.Number)
	r.NGVtx = float32(evt.NGoodVtx)
	r.Rho = float32(evt.Rho)

	tau := &evt.Candidates[i]
	r.TauPt = float32(tau.Pt)
	r.TauEta = float32(tau.Eta())
	r.TauPhi = float32(tau.Phi())
	r.TauMass = float32(tau.Mass)
	r.TauDxy = float32(tau.Dxy)
	r.TauDz = float32(tau.Dz)
	r.TauCharge = float32(tau.Charge)
	r.TauDecayMode = float32(tau.DecayMode)
	r.TauChargedIso = float32(tau.ChargedIso)
	r.TauLeadTkDeltaEta = float32(tau.LeadTkDeltaEta)
	r.TauLeadTkDeltaPhi = float32(tau.LeadTkDeltaPhi)
	r.TauLeadTkPtOverTauPt = float32(tau.LeadTkPtOverTauPt)
	r.TauNeutralIso = float32(tau.NeutralIso)
	r.TauPhotonsOutsideSignalCone = float32(tau.PhotonsOutsideSignalCone)
	r.TauPuCorr = float32(tau.PuCorr)
	r.TauRawAntiEle = float32(tau.RawAntiEle)
	r.TauRawIso = float32(tau.RawIso)
	r.TauRawMVAnewDM2017v2 = float32(tau.RawMVAnewDM2017v2)
	r.TauRawAntiEleCat = float32(tau.RawAntiEleCat)
	r.TauIDAntiEle = WorkingPoint(tau.IDAntiEle)
	r.TauIDAntiMu = WorkingPoint(tau.IDAntiMu)
	r.TauIDMVAnewDM2017v2 = WorkingPoint(tau.IDMVAnewDM2017v2)
	r.TauGenPartIdx = float32(tau.GenPartIdx)
	r.TauGenPartFlav = float32(tau.GenPartFlav)

	if m.Truth != nil {
		gen := &evt.Truths[m.Truth.Index]
		r.GenPt = float32(gen.Pt)
		r.GenEta = float32(gen.Eta())
		r.GenPhi = float32(gen.Phi())
		r.GenMass = float32(gen.Mass)
		r.GenCharge = float32(gen.Charge)
		r.GenDecayMode = float32(gen.Status)
		r.GenDR = float32(m.Truth.DeltaR)
	}

	if m.Seed != nil {
		jet := &evt.Seeds[m.Seed.Index]
		r.JetPt = float32(jet.Pt)
		r.JetEta = float32(jet.Eta())
		r.JetPhi = float32(jet.Phi())
		r.JetMass = float32(jet.Mass)
		r.JetDR = float32(m.Seed.DeltaR)
	}
}

// WorkingPoint converts a cumulative discriminator bitmask (0, 1, 3, 7, ...)
// into the index of the tightest working point passed (0, 1, 2, 3, ...).
func WorkingPoint(mask uint8) float32 {
	return float32(math.Log2(float64(mask) + 1))
}
