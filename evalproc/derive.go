// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalproc turns raw measurement tables into the normalized
// comparison table behind the report.
//
// The pipeline is a sequence of pure table-to-table stages:
//
//	t = evalproc.Derive(t, queries)
//	t = evalproc.Normalize(t, warn)
//	t = evalproc.Group(t, warn)
//
// Derive computes per-record metrics from raw fields, Normalize
// canonicalizes the heterogeneous configuration encodings, and Group
// collapses re-run duplicates and imposes the fixed configuration
// order. Each stage returns a new table and leaves its input intact.
package evalproc

import (
	"github.com/u-index/uindex-eval/evalfmt"
	"github.com/u-index/uindex-eval/evalunit"
)

// Derive computes the derived metrics of every record: memory
// snapshots in MB, mismatches per query, phase percentages, per-query
// timings against the expected query count, and the combined
// build-plus-sketch cost.
//
// queries is the expected query count of the run, a report-level
// constant rather than a per-record field.
//
// Divisions with a zero or absent denominator leave the derived field
// absent; a phase that was never exercised is legitimate, not an
// error.
func Derive(t evalfmt.Table, queries int) evalfmt.Table {
	out := make(evalfmt.Table, len(t))
	for i := range t {
		r := t[i] // copy

		for j, rss := range r.RSS {
			if rss.OK {
				r.RSSMB[j] = evalfmt.Float(evalunit.BytesToMB(rss.Int))
			}
		}

		// floor(mismatches/queries); a missing operand means the
		// run reported no mismatch accounting, which reads as 0.
		r.MismPerQuery = evalfmt.Int(0)
		if r.Mismatches.OK && r.Queries.OK && r.Queries.Int != 0 {
			r.MismPerQuery = evalfmt.Int(floorDiv(r.Mismatches.Int, r.Queries.Int))
		}

		// Phase shares of the total query time, truncated toward
		// zero like the historical report.
		r.SketchPct = phasePct(r.QuerySketchSec, r.QuerySec)
		r.SearchPct = phasePct(r.QuerySearchSec, r.QuerySec)
		r.CheckPct = phasePct(r.QueryCheckSec, r.QuerySec)
		r.InvertPct = phasePct(r.QueryInvertSec, r.QuerySec)

		if queries > 0 {
			if r.QuerySec.OK {
				r.USPerQuery = evalfmt.Float(evalunit.PerQueryMicros(r.QuerySec.Float, queries))
			}
			if r.QuerySearchSec.OK {
				r.SearchUSPerQuery = evalfmt.Float(evalunit.PerQueryMicros(r.QuerySearchSec.Float, queries))
			}
		}

		if r.BuildSec.OK && r.SketchSec.OK {
			r.TotalSec = evalfmt.Float(r.BuildSec.Float + r.SketchSec.Float)
		}

		out[i] = r
	}
	return out
}

func phasePct(phase, total evalfmt.OptFloat) evalfmt.OptInt {
	if !phase.OK || !total.OK {
		return evalfmt.OptInt{}
	}
	pct, ok := evalunit.TruncPercent(phase.Float, total.Float)
	if !ok {
		return evalfmt.OptInt{}
	}
	return evalfmt.Int(pct)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
