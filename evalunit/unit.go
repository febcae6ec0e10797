// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalunit converts between the units used by the benchmark
// harness and the units used in reports, and formats numbers for the
// comparison table.
package evalunit

import "strconv"

// BytesPerMB is the conversion factor for memory snapshots, which the
// harness reports in bytes while all size metrics are in MB.
const BytesPerMB = 1 << 20

// BytesToMB converts a byte count to MB.
func BytesToMB(b int) float64 {
	return float64(b) / BytesPerMB
}

// PerQueryMicros converts a total time in seconds over queries runs to
// microseconds per query.
func PerQueryMicros(totalSec float64, queries int) float64 {
	return totalSec / float64(queries) * 1e6
}

// TruncPercent returns part's share of total in whole percent,
// truncated toward zero. It reports false when total is zero, since
// the share of an unexercised phase is undefined rather than an error.
func TruncPercent(part, total float64) (int, bool) {
	if total == 0 {
		return 0, false
	}
	return int(part / total * 100), true
}

// A Scaler formats numbers with a fixed count of digits after the
// decimal point.
type Scaler struct {
	Prec int
}

// Format formats val according to the scaler.
func (s Scaler) Format(val float64) string {
	return strconv.FormatFloat(val, 'f', s.Prec, 64)
}

// TableScaler formats values for the comparison table the way the
// report historically printed them.
var TableScaler = Scaler{Prec: 2}
