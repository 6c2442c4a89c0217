// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conddb holds types to retrieve photon selection-cut
// configurations from the analysis conditions database.
//
// The database stores one row per named cut, in the tables pcm_cuts
// and phos_cuts. Rows resolve to the same cut objects the built-in
// library produces, so a run can take its cut definitions from the
// conditions database instead of the compiled-in registry.
package conddb // import "github.com/go-pwg/hbt/conddb"

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-pwg/hbt/cuts"
	_ "github.com/go-sql-driver/mysql"
)

const (
	host = "localhost"
)

var (
	usr = "username"
	pwd = "s3cr3t"

	drvName = "mysql"
)

// DB exposes convenience methods to retrieve cut configurations from
// the conditions database.
type DB struct {
	db   *sql.DB
	name string // name of the conditions database
}

// Open opens a connection to the conditions database dbname.
func Open(dbname string) (*DB, error) {
	db, err := sql.Open(drvName, dsn(dbname))
	if err != nil {
		return nil, fmt.Errorf("conddb: could not open %q db: %w", dbname, err)
	}

	err = ping(db, dbname)
	if err != nil {
		return nil, fmt.Errorf("conddb: could not ping %q db: %w", dbname, err)
	}

	return &DB{db: db, name: dbname}, nil
}

func dsn(db string) string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s", usr, pwd, host, db)
}

func ping(db *sql.DB, dbname string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("conddb: could not ping %q db: %w", dbname, err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// PCMCuts retrieves every PCM cut configuration, ordered by name.
func (db *DB) PCMCuts(ctx context.Context) ([]*cuts.V0Cut, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := db.db.QueryContext(ctx,
		`SELECT name,
		        min_pt, max_pt, max_eta,
		        min_rxy, max_rxy,
		        min_cospa, max_pca, max_qt,
		        min_ncls_tpc, max_chi2_tpc,
		        nsig_el_lo, nsig_el_hi
		 FROM pcm_cuts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("conddb: could not query pcm_cuts: %w", err)
	}
	defer rows.Close()

	var out []*cuts.V0Cut
	for rows.Next() {
		var (
			name string
			p    cuts.V0Params
		)
		err = rows.Scan(
			&name,
			&p.MinPt, &p.MaxPt, &p.MaxEta,
			&p.MinRxy, &p.MaxRxy,
			&p.MinCosPA, &p.MaxPCA, &p.MaxQtArm,
			&p.MinNClsTPC, &p.MaxTPCChi2NCl,
			&p.NSigmaElLow, &p.NSigmaElHigh,
		)
		if err != nil {
			return nil, fmt.Errorf("conddb: could not scan pcm_cuts row: %w", err)
		}
		out = append(out, cuts.NewV0Cut(name, p))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("conddb: could not scan db for pcm_cuts: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("conddb: context error while retrieving pcm_cuts: %w", err)
	}

	return out, nil
}

// PHOSCuts retrieves every PHOS cut configuration, ordered by name.
func (db *DB) PHOSCuts(ctx context.Context) ([]*cuts.ClusterCut, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := db.db.QueryContext(ctx,
		`SELECT name, min_e, min_ncells, max_m02, min_dist_bc
		 FROM phos_cuts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("conddb: could not query phos_cuts: %w", err)
	}
	defer rows.Close()

	var out []*cuts.ClusterCut
	for rows.Next() {
		var (
			name string
			p    cuts.ClusterParams
		)
		err = rows.Scan(&name, &p.MinE, &p.MinNCells, &p.MaxM02, &p.MinDistBC)
		if err != nil {
			return nil, fmt.Errorf("conddb: could not scan phos_cuts row: %w", err)
		}
		out = append(out, cuts.NewClusterCut(name, p))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("conddb: could not scan db for phos_cuts: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("conddb: context error while retrieving phos_cuts: %w", err)
	}

	return out, nil
}
