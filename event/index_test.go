// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"reflect"
	"testing"
)

func TestIndex(t *testing.T) {
	v0 := func(evid int32, pt float64) V0Photon {
		return V0Photon{Photon: Photon{EvID: evid, Pt: pt}}
	}

	ix := NewIndex([]V0Photon{
		v0(1, 0.5), v0(1, 1.0),
		v0(3, 2.0),
		v0(1, 1.5), // non-contiguous group
	})

	if got, want := ix.Len(), 4; got != want {
		t.Fatalf("invalid index size: got=%d, want=%d", got, want)
	}

	var pts []float64
	for _, g := range ix.Slice(1) {
		pts = append(pts, g.Pt)
	}
	if got, want := pts, []float64{0.5, 1.0, 1.5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("invalid slice for event 1: got=%v, want=%v", got, want)
	}

	if got, want := len(ix.Slice(3)), 1; got != want {
		t.Fatalf("invalid slice for event 3: got=%d, want=%d", got, want)
	}
	if got := ix.Slice(2); len(got) != 0 {
		t.Fatalf("invalid slice for event 2: got=%v, want empty", got)
	}
}

func TestPairType(t *testing.T) {
	for _, tc := range []struct {
		pt      PairType
		name    string
		sameSys bool
		phos    bool
		s1, s2  Subsystem
	}{
		{PCMPCM, "PCMPCM", true, false, PCM, PCM},
		{PHOSPHOS, "PHOSPHOS", true, true, PHOS, PHOS},
		{EMCEMC, "EMCEMC", true, false, EMC, EMC},
		{PCMPHOS, "PCMPHOS", false, true, PCM, PHOS},
		{PCMEMC, "PCMEMC", false, false, PCM, EMC},
		{PHOSEMC, "PHOSEMC", false, false, PHOS, EMC},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got, want := tc.pt.String(), tc.name; got != want {
				t.Errorf("invalid name: got=%q, want=%q", got, want)
			}
			if got, want := tc.pt.SameSys(), tc.sameSys; got != want {
				t.Errorf("invalid same-sys: got=%v, want=%v", got, want)
			}
			if got, want := tc.pt.NeedsPHOSReadout(), tc.phos; got != want {
				t.Errorf("invalid PHOS-readout need: got=%v, want=%v", got, want)
			}
			s1, s2 := tc.pt.Subsystems()
			if s1 != tc.s1 || s2 != tc.s2 {
				t.Errorf("invalid subsystems: got=(%v,%v), want=(%v,%v)",
					s1, s2, tc.s1, tc.s2,
				)
			}
		})
	}
}
