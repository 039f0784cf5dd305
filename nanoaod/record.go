package nanoaod

import (
	"go-hep.org/x/hep/groot/rtree"

	"github.com/decibelcooper/taueff"
)

// record mirrors the NanoAOD branches that make up a taueff.Event.
type record struct {
	Run      uint32
	Lumi     uint32
	Event    uint64
	NGoodVtx int32
	Rho      float32

	TauPt                       []float32
	TauEta                      []float32
	TauPhi                      []float32
	TauMass                     []float32
	TauDxy                      []float32
	TauDz                       []float32
	TauCharge                   []int32
	TauDecayMode                []int32
	TauChargedIso               []float32
	TauLeadTkDeltaEta           []float32
	TauLeadTkDeltaPhi           []float32
	TauLeadTkPtOverTauPt        []float32
	TauNeutralIso               []float32
	TauPhotonsOutsideSignalCone []float32
	TauPuCorr                   []float32
	TauRawAntiEle               []float32
	TauRawIso                   []float32
	TauRawMVAnewDM2017v2        []float32
	TauRawAntiEleCat            []int32
	TauIDAntiEle                []uint8
	TauIDAntiMu                 []uint8
	TauIDMVAnewDM2017v2         []uint8
	TauGenPartIdx               []int32
	TauGenPartFlav              []uint8

	GenVisTauPt     []float32
	GenVisTauEta    []float32
	GenVisTauPhi    []float32
	GenVisTauMass   []float32
	GenVisTauCharge []int32
	GenVisTauStatus []int32

	JetPt   []float32
	JetEta  []float32
	JetPhi  []float32
	JetMass []float32
}

func (r *record) readVars() []rtree.ReadVar {
	return []rtree.ReadVar{
		{Name: "run", Value: &r.Run},
		{Name: "luminosityBlock", Value: &r.Lumi},
		{Name: "event", Value: &r.Event},
		{Name: "PV_npvsGood", Value: &r.NGoodVtx},
		{Name: "fixedGridRhoFastjetAll", Value: &r.Rho},

		{Name: "Tau_pt", Value: &r.TauPt},
		{Name: "Tau_eta", Value: &r.TauEta},
		{Name: "Tau_phi", Value: &r.TauPhi},
		{Name: "Tau_mass", Value: &r.TauMass},
		{Name: "Tau_dxy", Value: &r.TauDxy},
		{Name: "Tau_dz", Value: &r.TauDz},
		{Name: "Tau_charge", Value: &r.TauCharge},
		{Name: "Tau_decayMode", Value: &r.TauDecayMode},
		{Name: "Tau_chargedIso", Value: &r.TauChargedIso},
		{Name: "Tau_leadTkDeltaEta", Value: &r.TauLeadTkDeltaEta},
		{Name: "Tau_leadTkDeltaPhi", Value: &r.TauLeadTkDeltaPhi},
		{Name: "Tau_leadTkPtOverTauPt", Value: &r.TauLeadTkPtOverTauPt},
		{Name: "Tau_neutralIso", Value: &r.TauNeutralIso},
		{Name: "Tau_photonsOutsideSignalCone", Value: &r.TauPhotonsOutsideSignalCone},
		{Name: "Tau_puCorr", Value: &r.TauPuCorr},
		{Name: "Tau_rawAntiEle", Value: &r.TauRawAntiEle},
		{Name: "Tau_rawIso", Value: &r.TauRawIso},
		{Name: "Tau_rawMVAnewDM2017v2", Value: &r.TauRawMVAnewDM2017v2},
		{Name: "Tau_rawAntiEleCat", Value: &r.TauRawAntiEleCat},
		{Name: "Tau_idAntiEle", Value: &r.TauIDAntiEle},
		{Name: "Tau_idAntiMu", Value: &r.TauIDAntiMu},
		{Name: "Tau_idMVAnewDM2017v2", Value: &r.TauIDMVAnewDM2017v2},
		{Name: "Tau_genPartIdx", Value: &r.TauGenPartIdx},
		{Name: "Tau_genPartFlav", Value: &r.TauGenPartFlav},

		{Name: "GenVisTau_pt", Value: &r.GenVisTauPt},
		{Name: "GenVisTau_eta", Value: &r.GenVisTauEta},
		{Name: "GenVisTau_phi", Value: &r.GenVisTauPhi},
		{Name: "GenVisTau_mass", Value: &r.GenVisTauMass},
		{Name: "GenVisTau_charge", Value: &r.GenVisTauCharge},
		{Name: "GenVisTau_status", Value: &r.GenVisTauStatus},

		{Name: "Jet_pt", Value: &r.JetPt},
		{Name: "Jet_eta", Value: &r.JetEta},
		{Name: "Jet_phi", Value: &r.JetPhi},
		{Name: "Jet_mass", Value: &r.JetMass},
	}
}

// event copies the current entry into evt, reusing its slices.
func (r *record) event(evt *taueff.Event) {
	evt.Run = r.Run
	evt.Lumi = r.Lumi
	evt.Number = r.Event
	evt.NGoodVtx = r.NGoodVtx
	evt.Rho = float64(r.Rho)

	evt.Candidates = evt.Candidates[:0]
	for i := range r.TauPt {
		evt.Candidates = append(evt.Candidates, taueff.Candidate{
			Kinematics: kinematics(r.TauPt[i], r.TauEta[i], r.TauPhi[i], r.TauMass[i], r.TauCharge[i]),

			Dxy:       float64(r.TauDxy[i]),
			Dz:        float64(r.TauDz[i]),
			DecayMode: r.TauDecayMode[i],

			ChargedIso:               float64(r.TauChargedIso[i]),
			NeutralIso:               float64(r.TauNeutralIso[i]),
			PuCorr:                   float64(r.TauPuCorr[i]),
			PhotonsOutsideSignalCone: float64(r.TauPhotonsOutsideSignalCone[i]),
			LeadTkDeltaEta:           float64(r.TauLeadTkDeltaEta[i]),
			LeadTkDeltaPhi:           float64(r.TauLeadTkDeltaPhi[i]),
			LeadTkPtOverTauPt:        float64(r.TauLeadTkPtOverTauPt[i]),

			RawAntiEle:        float64(r.TauRawAntiEle[i]),
			RawAntiEleCat:     r.TauRawAntiEleCat[i],
			RawIso:            float64(r.TauRawIso[i]),
			RawMVAnewDM2017v2: float64(r.TauRawMVAnewDM2017v2[i]),
			IDAntiEle:         r.TauIDAntiEle[i],
			IDAntiMu:          r.TauIDAntiMu[i],
			IDMVAnewDM2017v2:  r.TauIDMVAnewDM2017v2[i],

			GenPartIdx:  r.TauGenPartIdx[i],
			GenPartFlav: r.TauGenPartFlav[i],
		})
	}

	evt.Truths = evt.Truths[:0]
	for i := range r.GenVisTauPt {
		evt.Truths = append(evt.Truths, taueff.Truth{
			Kinematics: kinematics(r.GenVisTauPt[i], r.GenVisTauEta[i], r.GenVisTauPhi[i], r.GenVisTauMass[i], r.GenVisTauCharge[i]),
			Status:     r.GenVisTauStatus[i],
		})
	}

	evt.Seeds = evt.Seeds[:0]
	for i := range r.JetPt {
		evt.Seeds = append(evt.Seeds, taueff.Seed{
			Kinematics: kinematics(r.JetPt[i], r.JetEta[i], r.JetPhi[i], r.JetMass[i], 0),
		})
	}
}

func kinematics(pt, eta, phi, mass float32, charge int32) taueff.Kinematics {
	return taueff.Kinematics{
		Position: taueff.Pos(float64(eta), float64(phi)),
		Pt:       float64(pt),
		Mass:     float64(mass),
		Charge:   charge,
	}
}
