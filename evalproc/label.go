// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import (
	"fmt"

	"github.com/u-index/uindex-eval/evalfmt"
)

// SketchLabel is the legend label of a record's sketching scheme:
// "Plain text index" for unsketched configurations, otherwise the
// (k,l) parameter pair.
func SketchLabel(r *evalfmt.Record) string {
	if r.K == evalfmt.NoSketch {
		return "Plain text index"
	}
	return fmt.Sprintf("U-index (k,l) = (%d, %d)", r.K, r.L)
}

// ParamLabel is the x-axis label of a record's index configuration:
// the canonical index name with a " -H" suffix when remapping is off
// and a " -S" suffix when the minimizer-space sequence is not stored.
// The SIndex family has no parameter suffixes.
func ParamLabel(r *evalfmt.Record) string {
	if r.Index == CanonSIndex {
		return r.Index
	}
	label := r.Index
	if r.Remap != evalfmt.RemapOn {
		label += " -H"
	}
	if r.StoreMS != evalfmt.NotApplicable && r.StoreMS != 1 {
		label += " -S"
	}
	return label
}
