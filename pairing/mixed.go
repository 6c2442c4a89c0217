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

// DefaultDepth is the default per-anchor event-mixing depth.
const DefaultDepth = 10

// Prefilter returns the subset of evs usable for event mixing: events
// passing the quality gates (trigger selection, >= 1 contributor,
// vertex inside the window) and holding enough photon candidates for
// at least one pair type.
func Prefilter(evs []event.Event) []event.Event {
	var out []event.Event
	for _, ev := range evs {
		if !ev.Sel8 || ev.NumContrib < 1 || math.Abs(ev.PosZ) >= zvtxWindow {
			continue
		}
		if !(ev.NPCM >= 2 || ev.NPHOS >= 2 || (ev.NPCM >= 1 && ev.NPHOS >= 1)) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// minCounts reports whether ev holds enough candidates for pair type
// pt (two of the subsystem for same-subsystem types, one of each for
// cross-subsystem types).
func minCounts(pt event.PairType, ev event.Event) bool {
	n := func(sys event.Subsystem) int32 {
		switch sys {
		case event.PCM:
			return ev.NPCM
		case event.PHOS:
			return ev.NPHOS
		case event.EMC:
			return ev.NEMC
		}
		return 0
	}
	s1, s2 := pt.Subsystems()
	if pt.SameSys() {
		return n(s1) >= 2
	}
	return n(s1) >= 1 && n(s2) >= 1
}

// MixedEvent enumerates cross-event photon pairs of pair type pt over
// the prefiltered events evs and fills sink with the accepted ones.
//
// Events are pooled by (z-vertex, multiplicity) bin; only events of
// the same bin are mixed, as ordered pairs with strictly increasing
// position so no (j,i) duplicate is ever produced. The earlier event
// of a pair is the anchor: once depth+1 partner events have actually
// been mixed with an anchor, the remaining partners are skipped.
// Event pairs failing the per-pair-type candidate-count requirement
// do not consume mixing depth.
//
// Cross-event candidate pairs are a full cross-product (the two
// candidates can never be the same object); same-subsystem pair types
// keep the cut1 == cut2 diagonal, like the same-event engine.
func MixedEvent[T1, T2 event.Candidate](
	sink Sink,
	pt event.PairType,
	evs []event.Event,
	g1 *event.Index[T1], g2 *event.Index[T2],
	cuts1 []Cut[T1], cuts2 []Cut[T2],
	binning Binning,
	depth int,
) {
	enumerateMixed(evs, binning, depth,
		func(ev event.Event) bool { return minCounts(pt, ev) },
		func(ev1, ev2 event.Event) {
			mixPair(sink, pt, ev1, ev2, g1, g2, cuts1, cuts2)
		},
	)
}

// enumerateMixed drives the mixing combinatorics: for each bin of the
// pool, ordered event pairs with strictly increasing position, capped
// per anchor at depth+1 mixed partners. ok gates both events of a
// pair; rejected pairs do not count against the cap.
func enumerateMixed(
	evs []event.Event,
	binning Binning,
	depth int,
	ok func(event.Event) bool,
	mix func(ev1, ev2 event.Event),
) {
	pool := newPool(binning)
	for i, ev := range evs {
		pool.add(i, ev.PosZ, ev.Mult)
	}

	for _, key := range pool.keys {
		idxs := pool.bins[key]
		for a, i := range idxs {
			ev1 := evs[i]
			nev := 0
			for _, j := range idxs[a+1:] {
				if nev > depth {
					break
				}
				ev2 := evs[j]
				if !ok(ev1) || !ok(ev2) {
					continue
				}
				mix(ev1, ev2)
				nev++
			}
		}
	}
}

func mixPair[T1, T2 event.Candidate](
	sink Sink,
	pt event.PairType,
	ev1, ev2 event.Event,
	g1 *event.Index[T1], g2 *event.Index[T2],
	cuts1 []Cut[T1], cuts2 []Cut[T2],
) {
	var (
		p1 = g1.Slice(ev1.ID)
		p2 = g2.Slice(ev2.ID)
	)

	switch {
	case pt.SameSys():
		for icut := range cuts1 {
			var (
				c1 = cuts1[icut]
				c2 = cuts2[icut]
			)
			fillMixed(sink, pt, p1, p2, c1, c2)
		}
	default:
		for _, c1 := range cuts1 {
			for _, c2 := range cuts2 {
				fillMixed(sink, pt, p1, p2, c1, c2)
			}
		}
	}
}

func fillMixed[T1, T2 event.Candidate](
	sink Sink,
	pt event.PairType,
	p1 []T1, p2 []T2,
	c1 Cut[T1], c2 Cut[T2],
) {
	for i := range p1 {
		for j := range p2 {
			if !selected(p1[i], p2[j], c1, c2) {
				continue
			}
			obs := kine.Rel(p1[i].Kine(), p2[j].Kine())
			sink.FillPair(pt, c1.Name(), c2.Name(), hist.Mixed, obs)
		}
	}
}
