// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

// Index groups photon candidates by their owning event identifier, so
// pairing engines can slice the candidates of one event in O(1).
// The per-event order of candidates follows the input order.
type Index[T Candidate] struct {
	groups map[int32][]T
	n      int
}

// NewIndex builds an index over cands, keyed by owning event.
func NewIndex[T Candidate](cands []T) *Index[T] {
	ix := &Index[T]{
		groups: make(map[int32][]T),
		n:      len(cands),
	}
	for _, c := range cands {
		id := c.EventID()
		ix.groups[id] = append(ix.groups[id], c)
	}
	return ix
}

// Slice returns the candidates owned by event evid, in input order.
// Events without candidates yield an empty slice.
func (ix *Index[T]) Slice(evid int32) []T {
	return ix.groups[evid]
}

// Len returns the total number of indexed candidates.
func (ix *Index[T]) Len() int { return ix.n }
