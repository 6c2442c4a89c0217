// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cuts holds the photon selection cuts of the HBT analysis and
// the registry of prebuilt, named cut configurations.
//
// A cut is a named predicate over one photon candidate; the name is a
// stable identity, used both to select candidates and to label the
// output histogram slots.
package cuts // import "github.com/go-pwg/hbt/cuts"

import (
	"math"

	"github.com/go-pwg/hbt/event"
)

// V0Params holds the thresholds of a PCM (conversion photon) cut.
type V0Params struct {
	MinPt  float64
	MaxPt  float64
	MaxEta float64

	MinRxy   float64
	MaxRxy   float64
	RxyBands [][2]float64 // non-empty: conversion radius must fall in one band

	MinCosPA float64
	MaxPCA   float64
	MaxQtArm float64

	// per-leg requirements
	MinNClsTPC    int32
	MaxTPCChi2NCl float64
	NSigmaElLow   float64
	NSigmaElHigh  float64
}

// V0Cut selects PCM photon candidates, evaluating both the V0 and its
// two conversion legs.
type V0Cut struct {
	name string
	p    V0Params
}

// NewV0Cut builds a PCM cut with identity name.
func NewV0Cut(name string, p V0Params) *V0Cut {
	return &V0Cut{name: name, p: p}
}

// Name returns the cut identity.
func (cut *V0Cut) Name() string { return cut.name }

// Params returns the cut thresholds.
func (cut *V0Cut) Params() V0Params { return cut.p }

// Pass reports whether g passes the cut.
func (cut *V0Cut) Pass(g event.V0Photon) bool {
	p := cut.p
	if g.Pt < p.MinPt || g.Pt > p.MaxPt {
		return false
	}
	if math.Abs(g.Eta) > p.MaxEta {
		return false
	}
	if !cut.passRxy(g.RXY) {
		return false
	}
	if g.CosPA < p.MinCosPA {
		return false
	}
	if g.PCA > p.MaxPCA {
		return false
	}
	if g.QtArm > p.MaxQtArm {
		return false
	}
	for _, leg := range g.Legs {
		if !cut.passLeg(leg) {
			return false
		}
	}
	return true
}

func (cut *V0Cut) passRxy(rxy float64) bool {
	p := cut.p
	if len(p.RxyBands) == 0 {
		return rxy >= p.MinRxy && rxy <= p.MaxRxy
	}
	for _, band := range p.RxyBands {
		if rxy >= band[0] && rxy <= band[1] {
			return true
		}
	}
	return false
}

func (cut *V0Cut) passLeg(leg event.Leg) bool {
	p := cut.p
	if leg.NClsTPC < p.MinNClsTPC {
		return false
	}
	if leg.TPCChi2NCl > p.MaxTPCChi2NCl {
		return false
	}
	if leg.TPCNSigmaEl < p.NSigmaElLow || leg.TPCNSigmaEl > p.NSigmaElHigh {
		return false
	}
	return true
}

// ClusterParams holds the thresholds of a calorimeter cluster cut.
type ClusterParams struct {
	MinE      float64
	MinNCells int32
	MaxM02    float64
	MinDistBC float64
}

// ClusterCut selects calorimeter photon candidates.
type ClusterCut struct {
	name string
	p    ClusterParams
}

// NewClusterCut builds a calorimeter cut with identity name.
func NewClusterCut(name string, p ClusterParams) *ClusterCut {
	return &ClusterCut{name: name, p: p}
}

// Name returns the cut identity.
func (cut *ClusterCut) Name() string { return cut.name }

// Params returns the cut thresholds.
func (cut *ClusterCut) Params() ClusterParams { return cut.p }

// Pass reports whether cl passes the cut.
func (cut *ClusterCut) Pass(cl event.Cluster) bool {
	p := cut.p
	if cl.E < p.MinE {
		return false
	}
	if cl.NCells < p.MinNCells {
		return false
	}
	if p.MaxM02 > 0 && cl.M02 > p.MaxM02 {
		return false
	}
	if cl.DistBadChannel < p.MinDistBC {
		return false
	}
	return true
}
