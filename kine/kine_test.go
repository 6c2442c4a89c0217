// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kine

import (
	"math"
	"testing"

	"github.com/go-pwg/hbt/event"
)

const epsilon = 1e-12

func TestRel(t *testing.T) {
	for _, tc := range []struct {
		name   string
		g1, g2 event.Photon
		want   Obs
	}{
		{
			// back-to-back in the transverse plane: the summed
			// momentum vanishes, exercising the degenerate
			// out/side-axis case.
			name: "back-to-back",
			g1:   event.Photon{Pt: 1, Eta: 0, Phi: 0},
			g2:   event.Photon{Pt: 1, Eta: 0, Phi: math.Pi},
			want: Obs{Qinv: 2, Qlong: 0, Qout: 0, Qside: 0, Kt: 0},
		},
		{
			// orthogonal unit momenta: q=(1,-1,0), k=(0.5,0.5,0).
			name: "orthogonal",
			g1:   event.Photon{Pt: 1, Eta: 0, Phi: 0},
			g2:   event.Photon{Pt: 1, Eta: 0, Phi: 0.5 * math.Pi},
			want: Obs{
				Qinv:  math.Sqrt2,
				Qlong: 0,
				Qout:  0,
				Qside: math.Sqrt2,
				Kt:    math.Sqrt(0.5),
			},
		},
		{
			name: "identical",
			g1:   event.Photon{Pt: 1.5, Eta: 0.5, Phi: 1},
			g2:   event.Photon{Pt: 1.5, Eta: 0.5, Phi: 1},
			want: Obs{
				Qinv:  0,
				Qlong: 0,
				Qout:  0,
				Qside: 0,
				Kt:    1.5,
			},
		},
		{
			// pure longitudinal separation: same pt and phi,
			// different eta. q is along z up to the energy
			// difference.
			name: "longitudinal",
			g1:   event.Photon{Pt: 1, Eta: 1, Phi: 0},
			g2:   event.Photon{Pt: 1, Eta: 0, Phi: 0},
			want: relByHand(
				event.Photon{Pt: 1, Eta: 1, Phi: 0},
				event.Photon{Pt: 1, Eta: 0, Phi: 0},
			),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Rel(tc.g1, tc.g2)
			cmpObs(t, got, tc.want)
		})
	}
}

// Opposite transverse momenta at any azimuth must report pure qinv:
// the residual |k| left by the phi arithmetic is rounding noise and
// must not seed the out/side axes.
func TestRelBackToBackAzimuths(t *testing.T) {
	for _, phi := range []float64{0, 0.3, 1, math.Pi / 2, 2.5} {
		var (
			g1  = event.Photon{Pt: 0.8, Eta: 0, Phi: phi}
			g2  = event.Photon{Pt: 0.8, Eta: 0, Phi: phi + math.Pi}
			got = Rel(g1, g2)
		)
		if got.Qout != 0 || got.Qside != 0 {
			t.Errorf("phi=%v: invalid axes: qout=%v, qside=%v, want 0, 0",
				phi, got.Qout, got.Qside,
			)
		}
		if got, want := got.Qinv, 1.6; math.Abs(got-want) > epsilon {
			t.Errorf("phi=%v: invalid qinv: got=%v, want=%v", phi, got, want)
		}
		if got, want := got.Kt, 0.0; math.Abs(got-want) > epsilon {
			t.Errorf("phi=%v: invalid kt: got=%v, want=%v", phi, got, want)
		}
	}
}

// relByHand recomputes the observables with plain trigonometry,
// independently of fmom/r3, for cross-checking.
func relByHand(g1, g2 event.Photon) Obs {
	px := func(g event.Photon) float64 { return g.Pt * math.Cos(g.Phi) }
	py := func(g event.Photon) float64 { return g.Pt * math.Sin(g.Phi) }
	pz := func(g event.Photon) float64 { return g.Pt * math.Sinh(g.Eta) }
	e := func(g event.Photon) float64 { return g.Pt * math.Cosh(g.Eta) }

	var (
		qx = px(g1) - px(g2)
		qy = py(g1) - py(g2)
		qz = pz(g1) - pz(g2)
		qe = e(g1) - e(g2)

		kx = 0.5 * (px(g1) + px(g2))
		ky = 0.5 * (py(g1) + py(g2))
		kz = 0.5 * (pz(g1) + pz(g2))
	)

	obs := Obs{
		Qinv:  math.Sqrt(qx*qx + qy*qy + qz*qz - qe*qe),
		Qlong: qz,
		Kt:    math.Hypot(kx, ky),
	}
	kp := math.Sqrt(kx*kx + ky*ky + kz*kz)
	if kp > 0 {
		var (
			ox, oy, oz = kx / kp, ky / kp, kz / kp
			sx, sy     = oy, -ox // (out x long) for long=(0,0,1)
		)
		obs.Qout = qx*ox + qy*oy + qz*oz
		obs.Qside = qx*sx + qy*sy
	}
	return obs
}

func cmpObs(t *testing.T, got, want Obs) {
	t.Helper()
	cmp := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > epsilon {
			t.Errorf("invalid %s: got=%v, want=%v", name, got, want)
		}
	}
	cmp("qinv", got.Qinv, want.Qinv)
	cmp("qlong", got.Qlong, want.Qlong)
	cmp("qout", got.Qout, want.Qout)
	cmp("qside", got.Qside, want.Qside)
	cmp("kt", got.Kt, want.Kt)
}

func TestRelQinvPositive(t *testing.T) {
	// qinv must be >= 0 for any two distinct massless candidates.
	pts := []float64{0.2, 1, 3.5}
	etas := []float64{-0.8, 0, 0.8}
	phis := []float64{0, 1, 2.5, 5}
	var cands []event.Photon
	for _, pt := range pts {
		for _, eta := range etas {
			for _, phi := range phis {
				cands = append(cands, event.Photon{Pt: pt, Eta: eta, Phi: phi})
			}
		}
	}
	for i, g1 := range cands {
		for j, g2 := range cands {
			if i == j {
				continue
			}
			obs := Rel(g1, g2)
			if obs.Qinv < 0 || math.IsNaN(obs.Qinv) {
				t.Fatalf("invalid qinv for pair (%d,%d): got=%v", i, j, obs.Qinv)
			}
			if math.IsNaN(obs.Qout) || math.IsNaN(obs.Qside) || math.IsNaN(obs.Qlong) {
				t.Fatalf("NaN projection for pair (%d,%d): %+v", i, j, obs)
			}
		}
	}
}
