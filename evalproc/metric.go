// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import (
	"fmt"

	"github.com/u-index/uindex-eval/evalfmt"
)

// A Metric names one per-record value that a chart panel can plot.
// Panel specifications reference metrics by name so that the panel set
// is configuration, not code.
type Metric string

const (
	MetricTotalSize  Metric = "total_size"  // total index size, MB
	MetricSketchSize Metric = "sketch_size" // minimizer positions and remap table, MB

	MetricTotalTime  Metric = "total_time"  // build + sketch, seconds
	MetricSketchTime Metric = "sketch_time" // sketching the input, seconds

	MetricQueryMicros  Metric = "us_per_query"        // µs per query
	MetricSearchMicros Metric = "search_us_per_query" // µs per query in the inner search

	MetricMemInit  Metric = "mem_init"  // RSS before sketching, MB
	MetricMemBuild Metric = "mem_build" // RSS after building, MB
	MetricMemQuery Metric = "mem_query" // RSS after querying, MB
)

var metricValues = map[Metric]func(*evalfmt.Record) evalfmt.OptFloat{
	MetricTotalSize:    func(r *evalfmt.Record) evalfmt.OptFloat { return r.TotalMB },
	MetricSketchSize:   func(r *evalfmt.Record) evalfmt.OptFloat { return r.SketchMB },
	MetricTotalTime:    func(r *evalfmt.Record) evalfmt.OptFloat { return r.TotalSec },
	MetricSketchTime:   func(r *evalfmt.Record) evalfmt.OptFloat { return r.SketchSec },
	MetricQueryMicros:  func(r *evalfmt.Record) evalfmt.OptFloat { return r.USPerQuery },
	MetricSearchMicros: func(r *evalfmt.Record) evalfmt.OptFloat { return r.SearchUSPerQuery },
	MetricMemInit:      func(r *evalfmt.Record) evalfmt.OptFloat { return r.RSSMB[0] },
	MetricMemBuild:     func(r *evalfmt.Record) evalfmt.OptFloat { return r.RSSMB[1] },
	MetricMemQuery:     func(r *evalfmt.Record) evalfmt.OptFloat { return r.RSSMB[2] },
}

// Check reports whether m names a known metric.
func (m Metric) Check() error {
	if _, ok := metricValues[m]; !ok {
		return fmt.Errorf("unknown metric %q", m)
	}
	return nil
}

// Value extracts the metric from a record. ok is false when the record
// does not carry the metric.
func (m Metric) Value(r *evalfmt.Record) (v float64, ok bool) {
	f, known := metricValues[m]
	if !known {
		return 0, false
	}
	o := f(r)
	return o.Float, o.OK
}
