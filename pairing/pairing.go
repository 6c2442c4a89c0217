// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairing enumerates photon pairs for the HBT analysis.
//
// Two engines share the candidate indices and the selection cuts: the
// same-event engine pairs candidates inside one collision (signal plus
// combinatorial background) and the mixed-event engine pairs
// candidates across kinematically similar collisions (background
// only). Both route accepted pairs through the kinematic transform
// into a Sink.
package pairing // import "github.com/go-pwg/hbt/pairing"

import (
	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/hist"
	"github.com/go-pwg/hbt/kine"
)

// Cut is a named selection over one photon candidate.
type Cut[T event.Candidate] interface {
	Name() string
	Pass(g T) bool
}

// Cuts converts a slice of concrete cuts into a slice of Cut values.
func Cuts[T event.Candidate, C Cut[T]](cs []C) []Cut[T] {
	out := make([]Cut[T], len(cs))
	for i := range cs {
		out[i] = cs[i]
	}
	return out
}

// Sink receives the fills produced by the pairing engines.
// *hist.Book implements Sink.
type Sink interface {
	FillPair(pt event.PairType, cut1, cut2 string, kind hist.Kind, obs kine.Obs)
	FillCounter(pt event.PairType, g hist.Gate)
	FillZvtxBefore(pt event.PairType, z float64)
	FillZvtxAfter(pt event.PairType, z float64)
}

var _ Sink = (*hist.Book)(nil)

// selected applies cut1 to g1 and cut2 to g2, with no cross-candidate
// coupling: a pair is accepted iff both candidates pass their own cut.
func selected[T1, T2 event.Candidate](g1 T1, g2 T2, cut1 Cut[T1], cut2 Cut[T2]) bool {
	return cut1.Pass(g1) && cut2.Pass(g2)
}
