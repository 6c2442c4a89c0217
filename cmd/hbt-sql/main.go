// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hbt-sql inspects the photon-cut definitions stored in a
// conditions database.
package main // import "github.com/go-pwg/hbt/cmd/hbt-sql"

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/go-pwg/hbt/conddb"
	_ "github.com/go-sql-driver/mysql"
)

const (
	dbname = "hbtcond"
)

func main() {
	log.SetPrefix("hbt-sql: ")
	log.SetFlags(0)

	var (
		name = flag.String("db", dbname, "name of the conditions database to inspect")
	)

	flag.Parse()

	db, err := conddb.Open(*name)
	if err != nil {
		log.Fatalf("could not open conditions db: %+v", err)
	}
	defer db.Close()

	err = doQuery(db)
	if err != nil {
		log.Fatalf("could not do query: %+v", err)
	}
}

func doQuery(db *conddb.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pcm, err := db.PCMCuts(ctx)
	if err != nil {
		return fmt.Errorf("could not get PCM cuts: %w", err)
	}
	log.Printf("PCM cuts: %d", len(pcm))
	for i, cut := range pcm {
		p := cut.Params()
		log.Printf("row[%d]: %-12q pt=[%g, %g) |eta|<%g rxy=[%g, %g) cospa>%g",
			i, cut.Name(), p.MinPt, p.MaxPt, p.MaxEta, p.MinRxy, p.MaxRxy, p.MinCosPA,
		)
	}

	phos, err := db.PHOSCuts(ctx)
	if err != nil {
		return fmt.Errorf("could not get PHOS cuts: %w", err)
	}
	log.Printf("PHOS cuts: %d", len(phos))
	for i, cut := range phos {
		p := cut.Params()
		log.Printf("row[%d]: %-12q e>%g ncells>=%d m02<%g dist-bc>%g",
			i, cut.Name(), p.MinE, p.MinNCells, p.MaxM02, p.MinDistBC,
		)
	}

	return nil
}
