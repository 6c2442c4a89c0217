// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evtio reads the JSON event streams consumed by hbt-run.
// The format is runner glue, not part of the analysis contract: one
// JSON document holding the event records and the per-subsystem
// candidate lists.
package evtio // import "github.com/go-pwg/hbt/internal/evtio"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-pwg/hbt/event"
)

// Data is one decoded input stream.
type Data struct {
	Events   []event.Event    `json:"events"`
	V0s      []event.V0Photon `json:"v0s"`
	Clusters []event.Cluster  `json:"clusters"`
}

// Read decodes an event stream from r.
func Read(r io.Reader) (*Data, error) {
	var data Data
	err := json.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("evtio: could not decode event stream: %w", err)
	}
	return &data, nil
}

// ReadFile decodes the event stream stored in fname.
func ReadFile(fname string) (*Data, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("evtio: could not open %q: %w", fname, err)
	}
	defer f.Close()

	data, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("evtio: could not read %q: %w", fname, err)
	}
	return data, nil
}
