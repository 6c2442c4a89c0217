// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairing

import (
	"math"

	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/hist"
	"github.com/go-pwg/hbt/kine"
)

// zvtxWindow is the half-width of the primary-vertex window, in cm.
const zvtxWindow = 10.0

// SameEvent enumerates intra-event photon pairs of pair type pt over
// evs and fills sink with the accepted ones.
//
// Events pass, in order: the PHOS readout requirement (pair types
// involving PHOS only), the trigger selection, the contributor
// requirement and the vertex window. Each gate feeds the collision
// counter; events failing a gate are skipped entirely.
//
// Same-subsystem pair types enumerate candidates strictly
// upper-triangular (no self-pairs, no (j,i) duplicates) with one cut
// applied to both legs of the slot; cross-subsystem types enumerate
// the full candidate cross-product over the full cut1 x cut2 matrix.
// For same-subsystem types, g2 and cuts2 must reference the same
// index and cut list as g1 and cuts1.
func SameEvent[T1, T2 event.Candidate](
	sink Sink,
	pt event.PairType,
	evs []event.Event,
	g1 *event.Index[T1], g2 *event.Index[T2],
	cuts1 []Cut[T1], cuts2 []Cut[T2],
) {
	for _, ev := range evs {
		if pt.NeedsPHOSReadout() && !ev.PHOSCPVReadout {
			continue
		}

		sink.FillZvtxBefore(pt, ev.PosZ)
		sink.FillCounter(pt, hist.GateAll)
		if !ev.Sel8 {
			continue
		}
		sink.FillCounter(pt, hist.GateSel8)
		if ev.NumContrib < 1 {
			continue
		}
		sink.FillCounter(pt, hist.GateContrib)
		if math.Abs(ev.PosZ) > zvtxWindow {
			continue
		}
		sink.FillZvtxAfter(pt, ev.PosZ)
		sink.FillCounter(pt, hist.GateZvtx)

		var (
			p1 = g1.Slice(ev.ID)
			p2 = g2.Slice(ev.ID)
		)

		switch {
		case pt.SameSys():
			for icut := range cuts1 {
				var (
					c1 = cuts1[icut]
					c2 = cuts2[icut]
				)
				for i := range p1 {
					for j := i + 1; j < len(p2); j++ {
						if !selected(p1[i], p2[j], c1, c2) {
							continue
						}
						obs := kine.Rel(p1[i].Kine(), p2[j].Kine())
						sink.FillPair(pt, c1.Name(), c2.Name(), hist.Same, obs)
					}
				}
			}
		default:
			for _, c1 := range cuts1 {
				for _, c2 := range cuts2 {
					for i := range p1 {
						for j := range p2 {
							if !selected(p1[i], p2[j], c1, c2) {
								continue
							}
							obs := kine.Rel(p1[i].Kine(), p2[j].Kine())
							sink.FillPair(pt, c1.Name(), c2.Name(), hist.Same, obs)
						}
					}
				}
			}
		}
	}
}
