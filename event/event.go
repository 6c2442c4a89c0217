// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event holds the data model for the two-photon HBT analysis:
// reconstructed collision events and the photon candidates attached to
// them, one flavour per reconstruction subsystem.
package event // import "github.com/go-pwg/hbt/event"

// Subsystem tags a photon-reconstruction subsystem.
type Subsystem byte

const (
	PCM  Subsystem = iota // photon conversion method (V0 pairs)
	PHOS                  // PHOS calorimeter clusters
	EMC                   // EMCal clusters
)

func (sys Subsystem) String() string {
	switch sys {
	case PCM:
		return "PCM"
	case PHOS:
		return "PHOS"
	case EMC:
		return "EMC"
	}
	return "INVALID"
}

// PairType enumerates the subsystem combinations a photon pair can be
// drawn from.
type PairType byte

const (
	PCMPCM PairType = iota
	PHOSPHOS
	EMCEMC
	PCMPHOS
	PCMEMC
	PHOSEMC
)

func (pt PairType) String() string {
	switch pt {
	case PCMPCM:
		return "PCMPCM"
	case PHOSPHOS:
		return "PHOSPHOS"
	case EMCEMC:
		return "EMCEMC"
	case PCMPHOS:
		return "PCMPHOS"
	case PCMEMC:
		return "PCMEMC"
	case PHOSEMC:
		return "PHOSEMC"
	}
	return "INVALID"
}

// SameSys reports whether both candidates of the pair come from the
// same subsystem. Same-subsystem pairs are enumerated strictly
// upper-triangular and both cuts of a histogram slot must be identical.
func (pt PairType) SameSys() bool {
	switch pt {
	case PCMPCM, PHOSPHOS, EMCEMC:
		return true
	}
	return false
}

// Subsystems returns the subsystems the two candidates of the pair are
// drawn from.
func (pt PairType) Subsystems() (s1, s2 Subsystem) {
	switch pt {
	case PCMPCM:
		return PCM, PCM
	case PHOSPHOS:
		return PHOS, PHOS
	case EMCEMC:
		return EMC, EMC
	case PCMPHOS:
		return PCM, PHOS
	case PCMEMC:
		return PCM, EMC
	case PHOSEMC:
		return PHOS, EMC
	}
	return PCM, PCM
}

// NeedsPHOSReadout reports whether events must carry the PHOS/CPV
// readout to be usable for this pair type.
func (pt PairType) NeedsPHOSReadout() bool {
	switch pt {
	case PHOSPHOS, PCMPHOS:
		return true
	}
	return false
}

// Event is one reconstructed collision. Events are owned by the event
// source and never modified by the pairing engines.
type Event struct {
	ID             int32   `json:"id"`
	PosZ           float64 `json:"posz"`        // z position of the primary vertex
	NumContrib     int32   `json:"num_contrib"` // number of vertex contributors
	Mult           int32   `json:"mult"`        // PV track multiplicity (mixing proxy)
	Sel8           bool    `json:"sel8"`        // minimum-bias trigger selection
	PHOSCPVReadout bool    `json:"phoscpv"`     // PHOS/CPV readout present
	NPCM           int32   `json:"ngpcm"`       // PCM photon candidates in this event
	NPHOS          int32   `json:"ngphos"`      // PHOS photon candidates in this event
	NEMC           int32   `json:"ngemc"`       // EMCal photon candidates in this event
}

// Photon is the kinematic core shared by all photon candidates.
// Candidates are treated as massless.
type Photon struct {
	EvID int32   `json:"evid"` // owning event
	Pt   float64 `json:"pt"`
	Eta  float64 `json:"eta"`
	Phi  float64 `json:"phi"`
}

// Kine returns the kinematic core of the candidate.
func (p Photon) Kine() Photon { return p }

// EventID returns the identifier of the owning event.
func (p Photon) EventID() int32 { return p.EvID }

// Candidate is satisfied by every photon-candidate flavour.
type Candidate interface {
	Kine() Photon
	EventID() int32
}

// Leg is one of the two conversion-electron tracks of a V0 photon.
type Leg struct {
	Pt          float64 `json:"pt"`
	Eta         float64 `json:"eta"`
	Phi         float64 `json:"phi"`
	NClsTPC     int32   `json:"ncls_tpc"`     // TPC clusters on track
	TPCChi2NCl  float64 `json:"tpc_chi2"`     // TPC chi2 per cluster
	TPCNSigmaEl float64 `json:"tpc_nsig_el"`  // TPC electron PID
	DCAXY       float64 `json:"dca_xy"`
	DCAZ        float64 `json:"dca_z"`
}

// V0Photon is a photon reconstructed from a conversion pair (PCM).
type V0Photon struct {
	Photon
	Alpha float64 `json:"alpha"` // Armenteros-Podolanski longitudinal asymmetry
	QtArm float64 `json:"qtarm"` // Armenteros-Podolanski qT
	CosPA float64 `json:"cospa"` // cosine of the pointing angle
	PCA   float64 `json:"pca"`   // distance of closest approach between legs
	RXY   float64 `json:"rxy"`   // transverse radius of the conversion point
	Legs  [2]Leg  `json:"legs"`
}

// Cluster is a photon candidate reconstructed in a calorimeter
// (PHOS or EMCal).
type Cluster struct {
	Photon
	E              float64 `json:"e"`
	NCells         int32   `json:"ncells"`
	M02            float64 `json:"m02"`     // shower-shape long axis
	DistBadChannel float64 `json:"dist_bc"` // distance to closest bad channel
}

var (
	_ Candidate = (*V0Photon)(nil)
	_ Candidate = (*Cluster)(nil)
)
