// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalfmt provides the measurement record model for u-index
// benchmark runs and readers and writers for the JSON statistics
// files emitted by the benchmark harness.
//
// A statistics file holds one JSON array of records, one record per
// (sketcher, index) configuration benchmarked. All fields except the
// index identifier are optional; the schema is deliberately sparse
// because different index families report different parameters.
//
// This package is designed to be used with the higher-level packages
// evalunit, evalproc, and evalchart.
package evalfmt

// NoSketch is the sentinel value of K and L for configurations that
// index the plain text without minimizer sketching.
const NoSketch = -1

// NotApplicable is the sentinel value of construction parameters
// (StoreMS, SASampling, IntWidth) that a given index family does not
// have.
const NotApplicable = -1

// A Remap records whether the input alphabet is value-permuted before
// indexing. It is tri-state on input: records that predate the flag
// leave it unset, and normalization resolves unset flags (see
// evalproc.ExpandRemap).
type Remap int

const (
	RemapUnset Remap = -1
	RemapOff   Remap = 0
	RemapOn    Remap = 1
)

func (r Remap) String() string {
	switch r {
	case RemapUnset:
		return "unset"
	case RemapOff:
		return "off"
	case RemapOn:
		return "on"
	}
	return "invalid"
}

// An OptInt is an integer that may be absent from a record.
type OptInt struct {
	Int int
	OK  bool
}

// Int returns an OptInt holding v.
func Int(v int) OptInt { return OptInt{v, true} }

// An OptFloat is a float64 that may be absent from a record.
type OptFloat struct {
	Float float64
	OK    bool
}

// Float returns an OptFloat holding v.
func Float(v float64) OptFloat { return OptFloat{v, true} }

// A Record is a single benchmark run of one index configuration.
//
// Raw fields are set by the reader. Derived fields are zero until
// evalproc.Derive fills them; stages never overwrite fields except for
// the documented normalization rewrites (K shim, Remap resolution,
// Index merging).
type Record struct {
	// Index is the implementation identifier. This is the raw name
	// from the harness until evalproc.Normalize canonicalizes it.
	Index string

	// K and L are the minimizer length and window parameters, or
	// NoSketch for plain-text configurations.
	K, L int

	// Remap reports whether the alphabet was remapped before
	// indexing. Tri-state until normalization.
	Remap Remap

	// Construction parameters; NotApplicable where an index family
	// has no such knob.
	StoreMS    int // store the minimizer-space sequence (0/1)
	SASampling int
	IntWidth   int

	// Sizes, in MB.
	SeqMB    OptFloat
	SketchMB OptFloat
	IndexMB  OptFloat
	TotalMB  OptFloat

	// Times, in seconds.
	BuildSec       OptFloat
	SketchSec      OptFloat
	QuerySec       OptFloat // total time over all queries
	QuerySketchSec OptFloat
	QuerySearchSec OptFloat
	QueryCheckSec  OptFloat
	QueryInvertSec OptFloat

	// Query counts.
	Queries     OptInt
	Mismatches  OptInt
	Matches     OptInt
	QueryLength OptInt
	Minimizers  OptInt

	// RSS holds resident-memory snapshots in bytes, taken before
	// sketching, after building, and after querying.
	RSS [3]OptInt

	// Free-form parameter descriptions from the harness.
	SketchParams string
	IndexParams  string

	// Derived fields, filled by evalproc.Derive.

	MismPerQuery OptInt // floor(Mismatches / Queries)

	// Phase shares of QuerySec, in whole percent truncated toward
	// zero. Absent when QuerySec is zero or absent.
	SketchPct OptInt
	SearchPct OptInt
	CheckPct  OptInt
	InvertPct OptInt

	USPerQuery       OptFloat // µs per query, against the configured query count
	SearchUSPerQuery OptFloat // µs per query spent in the inner search

	TotalSec OptFloat // BuildSec + SketchSec

	RSSMB [3]OptFloat // RSS converted to MB

	fileName string
	elem     int
}

// Pos returns the file name and 0-based array position this record was
// read from. For records not read from a file, it returns "", 0.
func (r *Record) Pos() (fileName string, elem int) {
	return r.fileName, r.elem
}

// A Table is an ordered sequence of records. Pipeline stages consume a
// table and produce a new one; they never mutate their input.
type Table []Record
