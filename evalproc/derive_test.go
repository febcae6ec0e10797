// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/u-index/uindex-eval/evalfmt"
)

func TestDerive(t *testing.T) {
	in := evalfmt.Table{{
		Index:          "libsais",
		K:              32,
		L:              4,
		Queries:        evalfmt.Int(10000),
		Mismatches:     evalfmt.Int(5000),
		QuerySec:       evalfmt.Float(1.0),
		QuerySearchSec: evalfmt.Float(0.5),
		BuildSec:       evalfmt.Float(40.0),
		SketchSec:      evalfmt.Float(2.0),
		RSS:            [3]evalfmt.OptInt{evalfmt.Int(1 << 20), evalfmt.Int(3 << 20), {}},
	}}

	out := Derive(in, 10000)

	r := out[0]
	assert.Equal(t, evalfmt.Int(0), r.MismPerQuery, "mism/q = floor(5000/10000)")
	assert.Equal(t, evalfmt.Float(100.0), r.USPerQuery, "us/q = 1.0s / 10000 * 1e6")
	assert.Equal(t, evalfmt.Float(50.0), r.SearchUSPerQuery)
	assert.Equal(t, evalfmt.Int(50), r.SearchPct)
	assert.Equal(t, evalfmt.Float(42.0), r.TotalSec, "Total = Build + Sketch")
	assert.Equal(t, evalfmt.Float(1.0), r.RSSMB[0])
	assert.Equal(t, evalfmt.Float(3.0), r.RSSMB[1])
	assert.False(t, r.RSSMB[2].OK, "absent snapshot stays absent")
	assert.False(t, r.SketchPct.OK, "unexercised phase has no share")

	// Derivation never mutates its input table.
	assert.False(t, in[0].USPerQuery.OK)
	assert.Equal(t, 32, in[0].K)
}

func TestDeriveMismPerQuery(t *testing.T) {
	tests := []struct {
		name       string
		mismatches evalfmt.OptInt
		queries    evalfmt.OptInt
		want       evalfmt.OptInt
	}{
		{"both", evalfmt.Int(25000), evalfmt.Int(10000), evalfmt.Int(2)},
		{"exact", evalfmt.Int(20000), evalfmt.Int(10000), evalfmt.Int(2)},
		{"floor", evalfmt.Int(19999), evalfmt.Int(10000), evalfmt.Int(1)},
		{"missingMismatches", evalfmt.OptInt{}, evalfmt.Int(10000), evalfmt.Int(0)},
		{"missingQueries", evalfmt.Int(5000), evalfmt.OptInt{}, evalfmt.Int(0)},
		{"missingBoth", evalfmt.OptInt{}, evalfmt.OptInt{}, evalfmt.Int(0)},
		{"zeroQueries", evalfmt.Int(5000), evalfmt.Int(0), evalfmt.Int(0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := Derive(evalfmt.Table{{Index: "libsais", Mismatches: test.mismatches, Queries: test.queries}}, 10000)
			assert.Equal(t, test.want, out[0].MismPerQuery)
		})
	}
}

func TestDeriveNotAvailable(t *testing.T) {
	// Division by a zero or absent total must propagate as absent,
	// never crash.
	out := Derive(evalfmt.Table{
		{Index: "libsais", QuerySec: evalfmt.Float(0), QuerySketchSec: evalfmt.Float(0.1)},
		{Index: "libsais", QuerySketchSec: evalfmt.Float(0.1)},
	}, 10000)
	for i := range out {
		assert.False(t, out[i].SketchPct.OK, "record %d", i)
	}
	assert.Equal(t, evalfmt.Float(0.0), out[0].USPerQuery, "zero total time is still a value per query")
	assert.False(t, out[1].USPerQuery.OK)
}

func TestDerivePercentTruncation(t *testing.T) {
	// 0.333/1.0 is 33.3%, truncated toward zero like the
	// historical report.
	out := Derive(evalfmt.Table{{
		Index:          "libsais",
		QuerySec:       evalfmt.Float(1.0),
		QuerySketchSec: evalfmt.Float(0.333),
		QueryCheckSec:  evalfmt.Float(0.999),
	}}, 10000)
	assert.Equal(t, evalfmt.Int(33), out[0].SketchPct)
	assert.Equal(t, evalfmt.Int(99), out[0].CheckPct)
}
