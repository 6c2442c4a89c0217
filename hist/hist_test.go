// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/kine"
)

func TestRegisterPairs(t *testing.T) {
	book := New()
	book.RegisterPairs(event.PCMPCM, []string{"a", "b"}, []string{"a", "b"})
	book.RegisterPairs(event.PCMPHOS, []string{"a", "b"}, []string{"x"})

	for _, tc := range []struct {
		pt         event.PairType
		cut1, cut2 string
		want       bool
	}{
		{event.PCMPCM, "a", "a", true},
		{event.PCMPCM, "b", "b", true},
		{event.PCMPCM, "a", "b", false}, // off-diagonal, same subsystem
		{event.PCMPHOS, "a", "x", true},
		{event.PCMPHOS, "b", "x", true},
		{event.PCMPHOS, "x", "a", false},
	} {
		got := book.Pair(tc.pt, tc.cut1, tc.cut2, Same) != nil
		if got != tc.want {
			t.Errorf("slot (%v, %q, %q): got=%v, want=%v",
				tc.pt, tc.cut1, tc.cut2, got, tc.want,
			)
		}
	}
}

func TestFillPair(t *testing.T) {
	book := New()
	book.RegisterPairs(event.PCMPCM, []string{"nocut"}, []string{"nocut"})

	obs := kine.Obs{Qinv: 0.1, Qlong: 0.02, Qout: -0.03, Qside: 0.04, Kt: 1.2}
	book.FillPair(event.PCMPCM, "nocut", "nocut", Same, obs)
	book.FillPair(event.PCMPCM, "nocut", "nocut", Same, obs)
	book.FillPair(event.PCMPCM, "nocut", "nocut", Mixed, obs)

	same := book.Pair(event.PCMPCM, "nocut", "nocut", Same)
	if got, want := same.Qinv.Entries(), int64(2); got != want {
		t.Fatalf("invalid same-event entries: got=%d, want=%d", got, want)
	}
	mix := book.Pair(event.PCMPCM, "nocut", "nocut", Mixed)
	if got, want := mix.Qinv.Entries(), int64(1); got != want {
		t.Fatalf("invalid mixed-event entries: got=%d, want=%d", got, want)
	}
	if got, want := mix.KtQinv.Entries(), int64(1); got != want {
		t.Fatalf("invalid kt-vs-qinv entries: got=%d, want=%d", got, want)
	}
}

func TestFillUnregisteredPanics(t *testing.T) {
	book := New()
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("expected a panic for an unregistered slot")
		}
	}()
	book.FillPair(event.PCMPCM, "nope", "nope", Same, kine.Obs{})
}

func TestEventSlot(t *testing.T) {
	book := New()
	book.RegisterEvent(event.PHOSPHOS)

	book.FillZvtxBefore(event.PHOSPHOS, 3)
	book.FillCounter(event.PHOSPHOS, GateAll)
	book.FillCounter(event.PHOSPHOS, GateSel8)
	book.FillZvtxAfter(event.PHOSPHOS, 3)

	if got, want := book.Counter(event.PHOSPHOS).Entries(), int64(2); got != want {
		t.Fatalf("invalid counter entries: got=%d, want=%d", got, want)
	}
	before, after := book.Zvtx(event.PHOSPHOS)
	if got, want := before.Entries(), int64(1); got != want {
		t.Fatalf("invalid zvtx-before entries: got=%d, want=%d", got, want)
	}
	if got, want := after.Entries(), int64(1); got != want {
		t.Fatalf("invalid zvtx-after entries: got=%d, want=%d", got, want)
	}
}

func TestWriteYODA(t *testing.T) {
	book := New()
	book.RegisterEvent(event.PCMPCM)
	book.RegisterPairs(event.PCMPCM, []string{"nocut"}, []string{"nocut"})
	book.FillPair(event.PCMPCM, "nocut", "nocut", Same, kine.Obs{Qinv: 0.1, Kt: 1})

	buf := new(bytes.Buffer)
	err := book.WriteYODA(buf)
	if err != nil {
		t.Fatalf("could not write YODA: %+v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"/PCMPCM/event/hCollisionCounter",
		"/PCMPCM/event/hZvtx_before",
		"/PCMPCM/event/hZvtx_after",
		"/PCMPCM/nocut_nocut/hs_q_same_qinv",
		"/PCMPCM/nocut_nocut/hs_q_mix_kt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in YODA output", want)
		}
	}
}

func TestObjectsDeterministic(t *testing.T) {
	mk := func() []string {
		book := New()
		book.RegisterEvent(event.PCMPHOS)
		book.RegisterEvent(event.PCMPCM)
		book.RegisterPairs(event.PCMPHOS, []string{"b", "a"}, []string{"x"})
		book.RegisterPairs(event.PCMPCM, []string{"b", "a"}, []string{"b", "a"})
		var names []string
		for _, obj := range book.Objects() {
			type named interface{ Name() string }
			names = append(names, obj.(named).Name())
		}
		return names
	}

	first := mk()
	for i := 0; i < 5; i++ {
		got := mk()
		if len(got) != len(first) {
			t.Fatalf("invalid number of objects: got=%d, want=%d", len(got), len(first))
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("object order not deterministic at %d: got=%q, want=%q",
					j, got[j], first[j],
				)
			}
		}
	}
}
