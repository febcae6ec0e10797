// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// A ParseError reports a malformed statistics file. A missing or
// unparseable input is fatal to the report; no partial table is
// returned alongside it.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// rawRecord mirrors the JSON emitted by the benchmark harness. All
// fields are optional; numeric fields are decoded as floats because
// the harness mixes integer and float encodings across versions.
type rawRecord struct {
	Index *string `json:"index"`

	SketchK     *float64  `json:"sketch_k"`
	SketchL     *float64  `json:"sketch_l"`
	SketchRemap *flexBool `json:"sketch_remap"`

	StoreMSSeq *float64 `json:"index_store_ms_seq"`
	SASampling *float64 `json:"index_sa_sampling"`
	IntWidth   *float64 `json:"index_width"`

	SeqMB    *float64 `json:"seq_size_MB"`
	SketchMB *float64 `json:"sketch_size_MB"`
	IndexMB  *float64 `json:"index_size_MB"`
	TotalMB  *float64 `json:"total_size_MB"`

	Build       *float64 `json:"Build"`
	Sketch      *float64 `json:"Sketch"`
	QueryTime   *float64 `json:"query_time"`
	QuerySketch *float64 `json:"t_query_sketch"`
	QuerySearch *float64 `json:"t_query_search"`
	QueryCheck  *float64 `json:"t_query_check"`
	QueryInvert *float64 `json:"t_query_invert_pos"`

	Queries     *float64 `json:"queries"`
	Mismatches  *float64 `json:"query_mismatches"`
	Matches     *float64 `json:"query_matches"`
	QueryLength *float64 `json:"query_length"`
	Minimizers  *float64 `json:"num_minimizers"`

	RSS0 *float64 `json:"rss0"`
	RSS1 *float64 `json:"rss1"`
	RSS2 *float64 `json:"rss2"`

	SketchParams *string `json:"sketch_params"`
	IndexParams  *string `json:"index_params"`
}

// A flexBool accepts JSON true/false as well as 0/1. The harness has
// emitted the remap flag both ways.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("1")):
		*b = true
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("0")):
		*b = false
	default:
		return fmt.Errorf("cannot parse %q as a flag", data)
	}
	return nil
}

// ReadFile parses one statistics file into a Table. The file must hold
// a JSON array of measurement records; every record must name its
// index implementation, all other fields are optional.
func ReadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{path, err}
	}
	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &ParseError{path, err}
	}

	t := make(Table, 0, len(raws))
	for i, raw := range raws {
		if raw.Index == nil || *raw.Index == "" {
			return nil, &ParseError{path, fmt.Errorf("record %d: missing index identifier", i)}
		}
		r := Record{
			Index:      *raw.Index,
			K:          intOr(raw.SketchK, NoSketch),
			L:          intOr(raw.SketchL, NoSketch),
			Remap:      remapOf(raw.SketchRemap),
			StoreMS:    intOr(raw.StoreMSSeq, NotApplicable),
			SASampling: intOr(raw.SASampling, NotApplicable),
			IntWidth:   intOr(raw.IntWidth, NotApplicable),

			SeqMB:    optFloat(raw.SeqMB),
			SketchMB: optFloat(raw.SketchMB),
			IndexMB:  optFloat(raw.IndexMB),
			TotalMB:  optFloat(raw.TotalMB),

			BuildSec:       optFloat(raw.Build),
			SketchSec:      optFloat(raw.Sketch),
			QuerySec:       optFloat(raw.QueryTime),
			QuerySketchSec: optFloat(raw.QuerySketch),
			QuerySearchSec: optFloat(raw.QuerySearch),
			QueryCheckSec:  optFloat(raw.QueryCheck),
			QueryInvertSec: optFloat(raw.QueryInvert),

			Queries:     optInt(raw.Queries),
			Mismatches:  optInt(raw.Mismatches),
			Matches:     optInt(raw.Matches),
			QueryLength: optInt(raw.QueryLength),
			Minimizers:  optInt(raw.Minimizers),

			RSS: [3]OptInt{optInt(raw.RSS0), optInt(raw.RSS1), optInt(raw.RSS2)},

			fileName: path,
			elem:     i,
		}
		if raw.SketchParams != nil {
			r.SketchParams = *raw.SketchParams
		}
		if raw.IndexParams != nil {
			r.IndexParams = *raw.IndexParams
		}
		t = append(t, r)
	}
	return t, nil
}

func intOr(p *float64, def int) int {
	if p == nil || math.IsNaN(*p) {
		return def
	}
	return int(*p)
}

func optInt(p *float64) OptInt {
	if p == nil || math.IsNaN(*p) {
		return OptInt{}
	}
	return Int(int(*p))
}

func optFloat(p *float64) OptFloat {
	if p == nil || math.IsNaN(*p) {
		return OptFloat{}
	}
	return Float(*p)
}

func remapOf(p *flexBool) Remap {
	if p == nil {
		return RemapUnset
	}
	if *p {
		return RemapOn
	}
	return RemapOff
}

// A Variant is one named dataset: the table read from a single
// statistics file. The name keys output artifacts, so it must be
// unique within a run.
type Variant struct {
	Name  string
	Table Table
}

// ReadVariants reads one statistics file per dataset variant.
//
// Each path may be of the form label=path, and the label part names
// the variant. Unlabeled paths are named by their file stem, with
// duplicate stems disambiguated by appending "#N".
func ReadVariants(paths []string) ([]Variant, error) {
	type input struct {
		path, name string
		isLabeled  bool
	}
	var inputs []input
	nameCount := make(map[string]int)
	for _, path := range paths {
		name := path
		isLabeled := false
		if i := strings.Index(path, "="); i >= 0 {
			name, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			nameCount[name]++
		}
		inputs = append(inputs, input{path, name, isLabeled})
	}

	// Disambiguate repeated stems so artifacts of distinct inputs
	// never overwrite each other. Explicit labels are taken as-is.
	nameI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || nameCount[inp.name] == 1 {
			continue
		}
		nameI[inp.name]++
		inp.name = fmt.Sprintf("%s#%d", inp.name, nameI[inp.name])
	}

	var vs []Variant
	for _, inp := range inputs {
		t, err := ReadFile(inp.path)
		if err != nil {
			return nil, err
		}
		vs = append(vs, Variant{Name: inp.name, Table: t})
	}
	return vs, nil
}
