// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuts

import (
	"fmt"
	"math"
	"strings"
)

// openV0 is the wide-open parameter set the named PCM cuts start from.
func openV0() V0Params {
	return V0Params{
		MinPt:         0,
		MaxPt:         math.Inf(+1),
		MaxEta:        math.Inf(+1),
		MinRxy:        0,
		MaxRxy:        math.Inf(+1),
		MinCosPA:      -1,
		MaxPCA:        math.Inf(+1),
		MaxQtArm:      math.Inf(+1),
		MinNClsTPC:    0,
		MaxTPCChi2NCl: math.Inf(+1),
		NSigmaElLow:   math.Inf(-1),
		NSigmaElHigh:  math.Inf(+1),
	}
}

func openCluster() ClusterParams {
	return ClusterParams{}
}

// pcmLib is the library of prebuilt PCM cuts, keyed by name.
var pcmLib = map[string]func() *V0Cut{
	"analysis": func() *V0Cut {
		p := openV0()
		p.MinPt = 0.1
		p.MaxEta = 0.9
		p.MinRxy = 1
		p.MaxRxy = 90
		p.MinCosPA = 0.99
		p.MaxPCA = 1.5
		p.MaxQtArm = 0.03
		p.MinNClsTPC = 40
		p.MaxTPCChi2NCl = 4
		p.NSigmaElLow, p.NSigmaElHigh = -3, +3
		return NewV0Cut("analysis", p)
	},
	"qc": func() *V0Cut {
		p := openV0()
		p.MinPt = 0.05
		p.MaxEta = 0.9
		p.MinRxy = 1
		p.MaxRxy = 180
		p.MinCosPA = 0.95
		p.MaxPCA = 3
		p.MinNClsTPC = 20
		p.MaxTPCChi2NCl = 10
		p.NSigmaElLow, p.NSigmaElHigh = -4, +4
		return NewV0Cut("qc", p)
	},
	"wwire_ib": func() *V0Cut {
		// conversions on the tungsten wires of the inner barrel.
		p := openV0()
		p.MinPt = 0.1
		p.MaxEta = 0.9
		p.MinCosPA = 0.99
		p.MaxPCA = 1.5
		p.RxyBands = [][2]float64{{7, 14}, {30, 35}}
		p.MinNClsTPC = 40
		p.MaxTPCChi2NCl = 4
		p.NSigmaElLow, p.NSigmaElHigh = -3, +3
		return NewV0Cut("wwire_ib", p)
	},
	"nocut": func() *V0Cut {
		return NewV0Cut("nocut", openV0())
	},
}

// phosLib is the library of prebuilt PHOS cuts, keyed by name.
// test01..test05 form a cluster-energy threshold ladder.
var phosLib = map[string]func() *ClusterCut{
	"test01": func() *ClusterCut { return phosTest("test01", 0.1) },
	"test02": func() *ClusterCut { return phosTest("test02", 0.2) },
	"test03": func() *ClusterCut { return phosTest("test03", 0.3) },
	"test04": func() *ClusterCut { return phosTest("test04", 0.4) },
	"test05": func() *ClusterCut { return phosTest("test05", 0.5) },
	"nocut": func() *ClusterCut {
		return NewClusterCut("nocut", openCluster())
	},
}

func phosTest(name string, minE float64) *ClusterCut {
	p := openCluster()
	p.MinE = minE
	p.MinNCells = 2
	return NewClusterCut(name, p)
}

// PCM resolves a prebuilt PCM cut by name.
func PCM(name string) (*V0Cut, error) {
	mk, ok := pcmLib[name]
	if !ok {
		return nil, fmt.Errorf("cuts: unknown PCM cut %q", name)
	}
	return mk(), nil
}

// PHOS resolves a prebuilt PHOS cut by name.
func PHOS(name string) (*ClusterCut, error) {
	mk, ok := phosLib[name]
	if !ok {
		return nil, fmt.Errorf("cuts: unknown PHOS cut %q", name)
	}
	return mk(), nil
}

// ParsePCM resolves a comma-separated list of PCM cut names, preserving
// list order. An unknown name makes the whole resolution fail.
func ParsePCM(list string) ([]*V0Cut, error) {
	names := splitNames(list)
	out := make([]*V0Cut, 0, len(names))
	for _, name := range names {
		cut, err := PCM(name)
		if err != nil {
			return nil, err
		}
		out = append(out, cut)
	}
	return out, nil
}

// ParsePHOS resolves a comma-separated list of PHOS cut names,
// preserving list order. An unknown name makes the whole resolution
// fail.
func ParsePHOS(list string) ([]*ClusterCut, error) {
	names := splitNames(list)
	out := make([]*ClusterCut, 0, len(names))
	for _, name := range names {
		cut, err := PHOS(name)
		if err != nil {
			return nil, err
		}
		out = append(out, cut)
	}
	return out, nil
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
