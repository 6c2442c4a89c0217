// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hbt-run computes two-photon HBT correlation histograms from
// a reconstructed event stream.
//
// For every enabled pair type (PCM-PCM, PHOS-PHOS, PCM-PHOS) it runs
// the same-event and mixed-event pairing engines and writes the
// resulting histogram book as a YODA file.
//
// Example:
//
//	$> hbt-run -pcmpcm -pcm-cuts=analysis,qc,nocut -o out.yoda ./events.json
package main // import "github.com/go-pwg/hbt/cmd/hbt-run"

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-pwg/hbt/conddb"
	"github.com/go-pwg/hbt/cuts"
	"github.com/go-pwg/hbt/event"
	"github.com/go-pwg/hbt/hist"
	"github.com/go-pwg/hbt/internal/evtio"
	"github.com/go-pwg/hbt/pairing"
	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	msg = log.New(os.Stdout, "hbt-run: ", 0)
)

// config holds the recognized analysis options, overridable from a
// YAML file and from flags.
type config struct {
	PCMCuts  string    `yaml:"cfgPCMCuts"`
	PHOSCuts string    `yaml:"cfgPHOSCuts"`
	NDepth   int       `yaml:"ndepth"`
	ZvtxBins []float64 `yaml:"zvtxBins"`
	MultBins []float64 `yaml:"multBins"`
}

func defaultConfig() config {
	binning := pairing.DefaultBinning()
	return config{
		PCMCuts:  "analysis,qc,nocut",
		PHOSCuts: "test02,test03",
		NDepth:   pairing.DefaultDepth,
		ZvtxBins: binning.ZEdges,
		MultBins: binning.MultEdges,
	}
}

type options struct {
	cfgFile  string
	pcmCuts  string
	phosCuts string
	ndepth   int
	cutsDB   string
	oname    string

	doPCMPCM   bool
	doPHOSPHOS bool
	doPCMPHOS  bool

	input string
}

func main() {
	var opts options
	flag.StringVar(&opts.cfgFile, "cfg", "", "path to optional YAML configuration file")
	flag.StringVar(&opts.pcmCuts, "pcm-cuts", "", "comma-separated list of PCM photon cuts (overrides cfgPCMCuts)")
	flag.StringVar(&opts.phosCuts, "phos-cuts", "", "comma-separated list of PHOS photon cuts (overrides cfgPHOSCuts)")
	flag.IntVar(&opts.ndepth, "ndepth", -1, "depth for event mixing (overrides ndepth)")
	flag.StringVar(&opts.cutsDB, "cuts-db", "", "name of the conditions database to load cut definitions from (default: built-in library)")
	flag.StringVar(&opts.oname, "o", "hbt.yoda", "path to output YODA file")
	flag.BoolVar(&opts.doPCMPCM, "pcmpcm", false, "enable PCM-PCM pairing")
	flag.BoolVar(&opts.doPHOSPHOS, "phosphos", false, "enable PHOS-PHOS pairing")
	flag.BoolVar(&opts.doPCMPHOS, "pcmphos", false, "enable PCM-PHOS pairing")

	flag.Usage = func() {
		fmt.Printf(`Usage: hbt-run [OPTIONS] events.json

ex:
 $> hbt-run -pcmpcm -pcm-cuts=analysis,qc,nocut -o out.yoda ./events.json

options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		msg.Fatalf("missing input event file")
	}
	opts.input = flag.Arg(0)

	err := run(opts)
	if err != nil {
		msg.Fatalf("could not run analysis: %+v", err)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	binning := pairing.Binning{ZEdges: cfg.ZvtxBins, MultEdges: cfg.MultBins}
	if err := binning.Check(); err != nil {
		return fmt.Errorf("invalid mixing binning: %w", err)
	}

	pcmCuts, phosCuts, err := resolveCuts(opts, cfg)
	if err != nil {
		return err
	}
	msg.Printf("number of PCM cuts = %d", len(pcmCuts))
	msg.Printf("number of PHOS cuts = %d", len(phosCuts))

	data, err := evtio.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("could not read event stream: %w", err)
	}
	msg.Printf("events: %d, v0s: %d, clusters: %d",
		len(data.Events), len(data.V0s), len(data.Clusters),
	)

	book, err := process(opts, cfg, binning, data, pcmCuts, phosCuts)
	if err != nil {
		return err
	}

	o, err := os.Create(opts.oname)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer o.Close()

	err = book.WriteYODA(o)
	if err != nil {
		return fmt.Errorf("could not write histogram book: %w", err)
	}

	err = o.Close()
	if err != nil {
		return fmt.Errorf("could not close output file: %w", err)
	}

	return nil
}

// process registers the histogram slots of the enabled pair types,
// then runs the pairing engines, one goroutine per pair type. All
// registration completes before the fan-out, and slots of different
// pair types are disjoint, so the engines need no synchronization on
// the book.
func process(
	opts options, cfg config, binning pairing.Binning,
	data *evtio.Data,
	pcmCuts []*cuts.V0Cut, phosCuts []*cuts.ClusterCut,
) (*hist.Book, error) {
	var (
		book   = hist.New()
		v0s    = event.NewIndex(data.V0s)
		cls    = event.NewIndex(data.Clusters)
		mixEvs = pairing.Prefilter(data.Events)

		pcm  = pairing.Cuts[event.V0Photon](pcmCuts)
		phos = pairing.Cuts[event.Cluster](phosCuts)

		pcmNames  = cutNames(pcmCuts)
		phosNames = cutNames(phosCuts)
	)
	msg.Printf("events usable for mixing: %d", len(mixEvs))

	// register every slot before any engine starts: the goroutines
	// below may only read the book's maps concurrently.
	var engines []func() error
	if opts.doPCMPCM {
		msg.Printf("enabled pairs = PCMPCM")
		book.RegisterEvent(event.PCMPCM)
		book.RegisterPairs(event.PCMPCM, pcmNames, pcmNames)
		engines = append(engines, func() error {
			pairing.SameEvent(book, event.PCMPCM, data.Events, v0s, v0s, pcm, pcm)
			pairing.MixedEvent(book, event.PCMPCM, mixEvs, v0s, v0s, pcm, pcm,
				binning, cfg.NDepth)
			return nil
		})
	}
	if opts.doPHOSPHOS {
		msg.Printf("enabled pairs = PHOSPHOS")
		book.RegisterEvent(event.PHOSPHOS)
		book.RegisterPairs(event.PHOSPHOS, phosNames, phosNames)
		engines = append(engines, func() error {
			pairing.SameEvent(book, event.PHOSPHOS, data.Events, cls, cls, phos, phos)
			pairing.MixedEvent(book, event.PHOSPHOS, mixEvs, cls, cls, phos, phos,
				binning, cfg.NDepth)
			return nil
		})
	}
	if opts.doPCMPHOS {
		msg.Printf("enabled pairs = PCMPHOS")
		book.RegisterEvent(event.PCMPHOS)
		book.RegisterPairs(event.PCMPHOS, pcmNames, phosNames)
		engines = append(engines, func() error {
			pairing.SameEvent(book, event.PCMPHOS, data.Events, v0s, cls, pcm, phos)
			pairing.MixedEvent(book, event.PCMPHOS, mixEvs, v0s, cls, pcm, phos,
				binning, cfg.NDepth)
			return nil
		})
	}

	if len(engines) == 0 {
		msg.Printf("no pairing process enabled, nothing to do")
	}

	grp := new(errgroup.Group)
	for _, eng := range engines {
		grp.Go(eng)
	}

	err := grp.Wait()
	if err != nil {
		return nil, fmt.Errorf("could not run pairing engines: %w", err)
	}

	return book, nil
}

func loadConfig(opts options) (config, error) {
	cfg := defaultConfig()
	if opts.cfgFile != "" {
		raw, err := os.ReadFile(opts.cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("could not read config file: %w", err)
		}
		err = yaml.Unmarshal(raw, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("could not parse config file %q: %w", opts.cfgFile, err)
		}
	}
	if opts.pcmCuts != "" {
		cfg.PCMCuts = opts.pcmCuts
	}
	if opts.phosCuts != "" {
		cfg.PHOSCuts = opts.phosCuts
	}
	if opts.ndepth >= 0 {
		cfg.NDepth = opts.ndepth
	}
	return cfg, nil
}

// resolveCuts turns the configured cut-name lists into cut objects,
// from the built-in library or from the conditions database. Unknown
// names fail the whole run.
func resolveCuts(opts options, cfg config) ([]*cuts.V0Cut, []*cuts.ClusterCut, error) {
	if opts.cutsDB == "" {
		pcm, err := cuts.ParsePCM(cfg.PCMCuts)
		if err != nil {
			return nil, nil, err
		}
		phos, err := cuts.ParsePHOS(cfg.PHOSCuts)
		if err != nil {
			return nil, nil, err
		}
		return pcm, phos, nil
	}

	db, err := conddb.Open(opts.cutsDB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open conditions db: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	pcmAll, err := db.PCMCuts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load PCM cuts: %w", err)
	}
	phosAll, err := db.PHOSCuts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load PHOS cuts: %w", err)
	}

	pcm, err := pick(cfg.PCMCuts, pcmAll, (*cuts.V0Cut).Name, "PCM")
	if err != nil {
		return nil, nil, err
	}
	phos, err := pick(cfg.PHOSCuts, phosAll, (*cuts.ClusterCut).Name, "PHOS")
	if err != nil {
		return nil, nil, err
	}
	return pcm, phos, nil
}

// pick resolves the configured name list against the cuts loaded from
// the conditions database, preserving list order.
func pick[T any](list string, all []T, name func(T) string, kind string) ([]T, error) {
	byName := make(map[string]T, len(all))
	for _, cut := range all {
		byName[name(cut)] = cut
	}
	var out []T
	for _, want := range splitList(list) {
		cut, ok := byName[want]
		if !ok {
			return nil, fmt.Errorf("unknown %s cut %q in conditions db", kind, want)
		}
		out = append(out, cut)
	}
	return out, nil
}

func splitList(list string) []string {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func cutNames[T interface{ Name() string }](cs []T) []string {
	names := make([]string, len(cs))
	for i, cut := range cs {
		names[i] = cut.Name()
	}
	return names
}
