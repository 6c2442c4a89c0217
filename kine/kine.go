// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kine computes the relative-momentum observables of a photon
// pair in the longitudinally co-moving system (LCMS): the invariant
// relative momentum qinv, the Bertsch-Pratt components (qlong, qout,
// qside) and the pair transverse momentum kt.
package kine // import "github.com/go-pwg/hbt/kine"

import (
	"math"

	"github.com/go-pwg/hbt/event"
	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Obs holds the five correlation observables of one photon pair.
type Obs struct {
	Qinv  float64
	Qlong float64
	Qout  float64
	Qside float64
	Kt    float64
}

// beam axis, defining the longitudinal direction.
var uvLong = r3.Vec{Z: 1}

// epsK is the relative threshold below which the spatial pair-average
// momentum is treated as zero. Exactly back-to-back candidates leave
// |k| at rounding-noise level (sin(pi) != 0 in floating point), and
// axes built from that noise are meaningless.
const epsK = 1e-12

// Rel computes the pair observables for two massless candidates.
//
// The difference four-vector q of two distinct massless momenta is
// spacelike, so qinv is reported as the positive root of -m2(q).
// The out axis is the unit vector along the spatial pair-average
// momentum k and side = out x long. For a zero spatial pair-average
// momentum (exactly back-to-back candidates) the out/side axes are
// undefined; Rel then reports qout = qside = 0 and keeps the pair.
func Rel(g1, g2 event.Photon) Obs {
	v1 := fmom.NewPtEtaPhiM(g1.Pt, g1.Eta, g1.Phi, 0)
	v2 := fmom.NewPtEtaPhiM(g2.Pt, g2.Eta, g2.Phi, 0)

	q := r3.Vec{
		X: v1.Px() - v2.Px(),
		Y: v1.Py() - v2.Py(),
		Z: v1.Pz() - v2.Pz(),
	}
	qE := v1.E() - v2.E()

	k := r3.Scale(0.5, r3.Vec{
		X: v1.Px() + v2.Px(),
		Y: v1.Py() + v2.Py(),
		Z: v1.Pz() + v2.Pz(),
	})

	obs := Obs{
		Qinv:  math.Sqrt(math.Max(0, r3.Norm2(q)-qE*qE)),
		Qlong: r3.Dot(q, uvLong),
		Kt:    math.Hypot(k.X, k.Y),
	}

	// massless candidates, so |p| = E sets the momentum scale.
	if p := r3.Norm(k); p > epsK*(v1.E()+v2.E()) {
		uvOut := r3.Scale(1/p, k)
		uvSide := r3.Cross(uvOut, uvLong)
		obs.Qout = r3.Dot(q, uvOut)
		obs.Qside = r3.Dot(q, uvSide)
	}

	return obs
}
