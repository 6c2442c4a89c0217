// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairing

import (
	"fmt"
	"sort"
)

// Binning defines the 2-D event-mixing bins over (z-vertex,
// multiplicity). Edges must be strictly increasing; both axes are
// open-ended, so every event falls in some bin (events below the
// first edge land in the underflow bin, above the last in the
// overflow bin).
type Binning struct {
	ZEdges    []float64
	MultEdges []float64
}

// DefaultBinning returns the standard mixing bins.
func DefaultBinning() Binning {
	return Binning{
		ZEdges:    []float64{-10, -8, -6, -4, -2, 0, 2, 4, 6, 8, 10},
		MultEdges: []float64{0, 10, 20, 40, 60, 80, 100, 200, 1e10},
	}
}

// Check verifies that both edge lists are strictly increasing.
func (b Binning) Check() error {
	for _, edges := range [][]float64{b.ZEdges, b.MultEdges} {
		for i := 1; i < len(edges); i++ {
			if edges[i] <= edges[i-1] {
				return fmt.Errorf(
					"pairing: mixing-bin edges not strictly increasing (%v <= %v)",
					edges[i], edges[i-1],
				)
			}
		}
	}
	return nil
}

// BinKey identifies one mixing bin.
type BinKey struct {
	Z    int
	Mult int
}

// Bin returns the mixing bin of an event with vertex z and
// multiplicity mult.
func (b Binning) Bin(z float64, mult int32) BinKey {
	return BinKey{
		Z:    sort.SearchFloat64s(b.ZEdges, z),
		Mult: sort.SearchFloat64s(b.MultEdges, float64(mult)),
	}
}

// pool is the mixing backlog: for each bin, the positions (into the
// prefiltered event stream) of the events of that bin, in arrival
// order. Events are never evicted; the per-anchor partner cap bounds
// the work instead.
type pool struct {
	binning Binning
	bins    map[BinKey][]int
	keys    []BinKey // insertion order of first appearance
}

func newPool(b Binning) *pool {
	return &pool{
		binning: b,
		bins:    make(map[BinKey][]int),
	}
}

func (p *pool) add(i int, z float64, mult int32) {
	key := p.binning.Bin(z, mult)
	if _, ok := p.bins[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.bins[key] = append(p.bins[key], i)
}
