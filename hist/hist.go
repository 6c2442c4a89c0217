// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist holds the histogram book of the HBT analysis.
//
// The book is an explicit sink object: every (pair type, cut pair)
// slot and every per-pair-type event slot is registered once, before
// the pairing engines run, and fills resolve through the precomputed
// slot maps. Filling an unregistered slot is a programming error and
// panics.
//
// Slots of different pair types may be filled from different
// goroutines; all fills for one pair type must come from a single
// goroutine.
package hist // import "github.com/go-pwg/hbt/hist"

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/kine"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/yodacnv"
	"golang.org/x/exp/maps"
)

// Kind discriminates same-event from mixed-event fills.
type Kind byte

const (
	Same Kind = iota
	Mixed
)

func (k Kind) String() string {
	switch k {
	case Same:
		return "same"
	case Mixed:
		return "mix"
	}
	return "INVALID"
}

// Gate enumerates the cumulative event-quality gates of the
// collision counter.
type Gate int

const (
	GateAll     Gate = 1 // every event inspected
	GateSel8    Gate = 2 // trigger selection
	GateContrib Gate = 3 // >= 1 vertex contributor
	GateZvtx    Gate = 4 // |z-vertex| within the window
)

// PairKey identifies one registered pair slot.
type PairKey struct {
	Pair event.PairType
	Cut1 string
	Cut2 string
}

// Dists holds the distributions of one (pair type, cut pair, kind)
// slot: 1-D projections of the five observables and a kt-vs-qinv map.
type Dists struct {
	Qinv   *hbook.H1D
	Qlong  *hbook.H1D
	Qout   *hbook.H1D
	Qside  *hbook.H1D
	Kt     *hbook.H1D
	KtQinv *hbook.H2D
}

func newDists(path string) *Dists {
	d := &Dists{
		Qinv:   hbook.NewH1D(100, 0, 1),
		Qlong:  hbook.NewH1D(100, -0.5, 0.5),
		Qout:   hbook.NewH1D(100, -0.5, 0.5),
		Qside:  hbook.NewH1D(100, -0.5, 0.5),
		Kt:     hbook.NewH1D(100, 0, 5),
		KtQinv: hbook.NewH2D(100, 0, 1, 50, 0, 5),
	}
	name(d.Qinv.Annotation(), path+"_qinv")
	name(d.Qlong.Annotation(), path+"_qlong")
	name(d.Qout.Annotation(), path+"_qout")
	name(d.Qside.Annotation(), path+"_qside")
	name(d.Kt.Annotation(), path+"_kt")
	name(d.KtQinv.Annotation(), path+"_kt_vs_qinv")
	return d
}

func (d *Dists) fill(obs kine.Obs) {
	d.Qinv.Fill(obs.Qinv, 1)
	d.Qlong.Fill(obs.Qlong, 1)
	d.Qout.Fill(obs.Qout, 1)
	d.Qside.Fill(obs.Qside, 1)
	d.Kt.Fill(obs.Kt, 1)
	d.KtQinv.Fill(obs.Qinv, obs.Kt, 1)
}

func name(ann hbook.Annotation, path string) {
	ann["name"] = path
	ann["path"] = path
}

type pairSlot struct {
	same *Dists
	mix  *Dists
}

type eventSlot struct {
	counter *hbook.H1D
	zBefore *hbook.H1D
	zAfter  *hbook.H1D
}

// Book is the histogram sink of the analysis.
type Book struct {
	pairs  map[PairKey]*pairSlot
	events map[event.PairType]*eventSlot
}

// New creates an empty book.
func New() *Book {
	return &Book{
		pairs:  make(map[PairKey]*pairSlot),
		events: make(map[event.PairType]*eventSlot),
	}
}

// RegisterEvent books the event-level histograms of pair type pt:
// the 4-gate collision counter and the z-vertex distributions before
// and after the vertex window.
func (b *Book) RegisterEvent(pt event.PairType) {
	if _, dup := b.events[pt]; dup {
		return
	}
	slot := &eventSlot{
		counter: hbook.NewH1D(4, 0.5, 4.5),
		zBefore: hbook.NewH1D(100, -25, 25),
		zAfter:  hbook.NewH1D(100, -25, 25),
	}
	name(slot.counter.Annotation(), "/"+pt.String()+"/event/hCollisionCounter")
	name(slot.zBefore.Annotation(), "/"+pt.String()+"/event/hZvtx_before")
	name(slot.zAfter.Annotation(), "/"+pt.String()+"/event/hZvtx_after")
	b.events[pt] = slot
}

// RegisterPairs books one slot per (cut1, cut2) combination. For
// same-subsystem pair types only the diagonal (cut1 == cut2) is
// booked.
func (b *Book) RegisterPairs(pt event.PairType, cuts1, cuts2 []string) {
	for _, c1 := range cuts1 {
		for _, c2 := range cuts2 {
			if pt.SameSys() && c1 != c2 {
				continue
			}
			b.registerPair(pt, c1, c2)
		}
	}
}

func (b *Book) registerPair(pt event.PairType, cut1, cut2 string) {
	key := PairKey{Pair: pt, Cut1: cut1, Cut2: cut2}
	if _, dup := b.pairs[key]; dup {
		return
	}
	prefix := fmt.Sprintf("/%s/%s_%s/hs_q", pt, cut1, cut2)
	b.pairs[key] = &pairSlot{
		same: newDists(prefix + "_same"),
		mix:  newDists(prefix + "_mix"),
	}
}

// FillPair accumulates the observables of one accepted pair into the
// slot keyed by (pt, cut1, cut2, kind).
func (b *Book) FillPair(pt event.PairType, cut1, cut2 string, kind Kind, obs kine.Obs) {
	slot, ok := b.pairs[PairKey{Pair: pt, Cut1: cut1, Cut2: cut2}]
	if !ok {
		panic(fmt.Errorf("hist: no slot registered for (%v, %q, %q)", pt, cut1, cut2))
	}
	switch kind {
	case Same:
		slot.same.fill(obs)
	case Mixed:
		slot.mix.fill(obs)
	default:
		panic(fmt.Errorf("hist: invalid fill kind %d", kind))
	}
}

// FillCounter records that an event of pair type pt passed gate g.
func (b *Book) FillCounter(pt event.PairType, g Gate) {
	b.eventSlot(pt).counter.Fill(float64(g), 1)
}

// FillZvtxBefore records the vertex position of an inspected event,
// before the vertex-window gate.
func (b *Book) FillZvtxBefore(pt event.PairType, z float64) {
	b.eventSlot(pt).zBefore.Fill(z, 1)
}

// FillZvtxAfter records the vertex position of an event surviving the
// vertex-window gate.
func (b *Book) FillZvtxAfter(pt event.PairType, z float64) {
	b.eventSlot(pt).zAfter.Fill(z, 1)
}

func (b *Book) eventSlot(pt event.PairType) *eventSlot {
	slot, ok := b.events[pt]
	if !ok {
		panic(fmt.Errorf("hist: no event slot registered for %v", pt))
	}
	return slot
}

// Pair returns the distributions of a registered slot, or nil.
func (b *Book) Pair(pt event.PairType, cut1, cut2 string, kind Kind) *Dists {
	slot, ok := b.pairs[PairKey{Pair: pt, Cut1: cut1, Cut2: cut2}]
	if !ok {
		return nil
	}
	if kind == Same {
		return slot.same
	}
	return slot.mix
}

// Counter returns the collision counter of pair type pt, or nil.
func (b *Book) Counter(pt event.PairType) *hbook.H1D {
	if slot, ok := b.events[pt]; ok {
		return slot.counter
	}
	return nil
}

// Zvtx returns the z-vertex distributions (before, after the window)
// of pair type pt.
func (b *Book) Zvtx(pt event.PairType) (before, after *hbook.H1D) {
	if slot, ok := b.events[pt]; ok {
		return slot.zBefore, slot.zAfter
	}
	return nil, nil
}

// Objects returns every booked histogram in a deterministic order.
func (b *Book) Objects() []yodacnv.Marshaler {
	var objs []yodacnv.Marshaler

	evts := maps.Keys(b.events)
	sort.Slice(evts, func(i, j int) bool { return evts[i] < evts[j] })
	for _, pt := range evts {
		slot := b.events[pt]
		objs = append(objs, slot.counter, slot.zBefore, slot.zAfter)
	}

	keys := maps.Keys(b.pairs)
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := keys[i], keys[j]
		if ki.Pair != kj.Pair {
			return ki.Pair < kj.Pair
		}
		if ki.Cut1 != kj.Cut1 {
			return ki.Cut1 < kj.Cut1
		}
		return ki.Cut2 < kj.Cut2
	})
	for _, key := range keys {
		slot := b.pairs[key]
		for _, d := range []*Dists{slot.same, slot.mix} {
			objs = append(objs,
				d.Qinv, d.Qlong, d.Qout, d.Qside, d.Kt, d.KtQinv,
			)
		}
	}
	return objs
}

// WriteYODA writes the whole book to w in the YODA text format.
func (b *Book) WriteYODA(w io.Writer) error {
	err := yodacnv.Write(w, b.Objects()...)
	if err != nil {
		return fmt.Errorf("hist: could not marshal book to YODA: %w", err)
	}
	return nil
}
