// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import (
	"sort"

	"github.com/u-index/uindex-eval/evalfmt"
)

// Group collapses re-run duplicates and imposes the fixed
// configuration order.
//
// Records are keyed by (rank of parameter label, k). Within a key the
// first-encountered record is the representative; later duplicates are
// discarded without merging. The result is sorted ascending by rank,
// then by k, which fixes both table row order and chart category
// order.
//
// Records whose label is outside the order table degrade rather than
// fail: they sort after all ranked records in first-seen label order,
// and each such label is reported through warn once.
func Group(t evalfmt.Table, warn WarnFunc) evalfmt.Table {
	type key struct {
		rank int
		k    int
	}

	// Ranks past the order table are assigned to unranked labels in
	// first-seen order, keeping the degraded sort deterministic.
	overflow := make(map[string]int)
	rankOf := func(label string) int {
		if r, err := Rank(label); err == nil {
			return r
		}
		r, ok := overflow[label]
		if !ok {
			r = len(paramOrder) + len(overflow)
			overflow[label] = r
			warn.warnf("parameter label %q has no configured order; sorting it last", label)
		}
		return r
	}

	type row struct {
		rank int
		rec  evalfmt.Record
	}
	seen := make(map[key]bool)
	rows := make([]row, 0, len(t))
	for i := range t {
		r := t[i]
		rank := rankOf(ParamLabel(&r))
		k := key{rank, r.K}
		if seen[k] {
			continue
		}
		seen[k] = true
		rows = append(rows, row{rank, r})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].rank != rows[j].rank {
			return rows[i].rank < rows[j].rank
		}
		return rows[i].rec.K < rows[j].rec.K
	})

	out := make(evalfmt.Table, len(rows))
	for i, row := range rows {
		out[i] = row.rec
	}
	return out
}
