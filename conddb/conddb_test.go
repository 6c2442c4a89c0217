// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conddb

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/internal/fakedb"
)

func init() {
	drvName = "fakedb"
}

var testTables = fakedb.Tables{
	"pcm_cuts": {
		Names: []string{
			"name",
			"min_pt", "max_pt", "max_eta",
			"min_rxy", "max_rxy",
			"min_cospa", "max_pca", "max_qt",
			"min_ncls_tpc", "max_chi2_tpc",
			"nsig_el_lo", "nsig_el_hi",
		},
		Values: [][]driver.Value{
			{
				"analysis",
				0.1, 1e10, 0.9,
				1.0, 90.0,
				0.99, 1.5, 0.03,
				int64(40), 4.0,
				-3.0, 3.0,
			},
			{
				"loose",
				0.05, 1e10, 0.9,
				1.0, 180.0,
				0.95, 3.0, 1e10,
				int64(20), 10.0,
				-4.0, 4.0,
			},
		},
	},
	"phos_cuts": {
		Names: []string{"name", "min_e", "min_ncells", "max_m02", "min_dist_bc"},
		Values: [][]driver.Value{
			{"test02", 0.2, int64(2), 0.0, 0.0},
			{"test03", 0.3, int64(2), 0.0, 0.0},
		},
	},
}

func TestOpen(t *testing.T) {
	db, err := Open("fakedb")
	if err != nil {
		t.Fatalf("could not open conddb: %+v", err)
	}
	defer db.Close()
}

func TestPCMCuts(t *testing.T) {
	db, err := Open("fakedb")
	if err != nil {
		t.Fatalf("could not open conddb: %+v", err)
	}
	defer db.Close()

	_ = fakedb.Run(context.Background(), testTables, func(ctx context.Context) error {
		cs, err := db.PCMCuts(ctx)
		if err != nil {
			t.Fatalf("could not retrieve PCM cuts: %+v", err)
		}

		if got, want := len(cs), 2; got != want {
			t.Fatalf("invalid number of PCM cuts: got=%d, want=%d", got, want)
		}
		if got, want := cs[0].Name(), "analysis"; got != want {
			t.Fatalf("invalid cut name: got=%q, want=%q", got, want)
		}
		if got, want := cs[0].Params().MinCosPA, 0.99; got != want {
			t.Fatalf("invalid min-cospa: got=%v, want=%v", got, want)
		}

		// the resolved cut behaves like a predicate.
		leg := event.Leg{NClsTPC: 100, TPCChi2NCl: 1, TPCNSigmaEl: 0}
		g := event.V0Photon{
			Photon: event.Photon{Pt: 1, Eta: 0},
			CosPA:  0.999, PCA: 0.1, QtArm: 0.01, RXY: 30,
			Legs: [2]event.Leg{leg, leg},
		}
		if !cs[0].Pass(g) {
			t.Fatalf("good photon rejected by %q", cs[0].Name())
		}
		g.CosPA = 0.5
		if cs[0].Pass(g) {
			t.Fatalf("bad photon accepted by %q", cs[0].Name())
		}
		return nil
	})
}

func TestPHOSCuts(t *testing.T) {
	db, err := Open("fakedb")
	if err != nil {
		t.Fatalf("could not open conddb: %+v", err)
	}
	defer db.Close()

	_ = fakedb.Run(context.Background(), testTables, func(ctx context.Context) error {
		cs, err := db.PHOSCuts(ctx)
		if err != nil {
			t.Fatalf("could not retrieve PHOS cuts: %+v", err)
		}

		var names []string
		for _, cut := range cs {
			names = append(names, cut.Name())
		}
		if got, want := len(names), 2; got != want {
			t.Fatalf("invalid number of PHOS cuts: got=%d, want=%d", got, want)
		}
		if names[0] != "test02" || names[1] != "test03" {
			t.Fatalf("invalid cut names: got=%v", names)
		}

		cl := event.Cluster{Photon: event.Photon{Pt: 0.25}, E: 0.25, NCells: 3}
		if !cs[0].Pass(cl) {
			t.Fatalf("0.25 GeV cluster rejected by %q", names[0])
		}
		if cs[1].Pass(cl) {
			t.Fatalf("0.25 GeV cluster accepted by %q", names[1])
		}
		return nil
	})
}
