// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import "github.com/u-index/uindex-eval/evalfmt"

// Canonical index names after normalization.
const (
	CanonLibsais = "libsais"
	CanonSDSL    = "SDSL FM"
	CanonAWRY    = "AWRY"
	CanonSIndex  = "SIndex"
)

// The two raw identifiers of the sdsl-lite FM index. They differ only
// in the internal integer width of the pointer representation, which
// is irrelevant to the comparison, so both collapse to CanonSDSL.
const (
	rawSDSLByte32 = "sdsl_lite_fm::FmIndexByte32Ptr"
	rawSDSLInt32  = "sdsl_lite_fm::FmIndexInt32Ptr"
)

// legacyK translates the minimizer lengths that old harness runs
// encoded as the (k,l) product back to their true values. This is a
// closed historical table, not a transformation: exactly these four
// inputs are rewritten, everything else (including NoSketch) passes
// through.
var legacyK = map[int]int{
	32:  4,
	64:  8,
	128: 15,
	256: 28,
}

// A WarnFunc surfaces degradations that do not stop the report, such
// as index identifiers unknown to the normalization rules.
type WarnFunc func(format string, args ...interface{})

func (w WarnFunc) warnf(format string, args ...interface{}) {
	if w != nil {
		w(format, args...)
	}
}

// Normalize canonicalizes configuration encodings. It applies, in
// order: the legacy k-value shim, unset-remap expansion, sdsl variant
// merging, and unsupported-combination pruning.
//
// After Normalize, every record's K is either a valid minimizer length
// or NoSketch, Remap is boolean, and recognized index names are
// canonical. Unrecognized names pass through unchanged with a warning;
// the report degrades but does not fail.
func Normalize(t evalfmt.Table, warn WarnFunc) evalfmt.Table {
	t = FixK(t)
	t = ExpandRemap(t)
	t = MergeVariants(t, warn)
	t = PruneUnsupported(t)
	return t
}

// FixK applies the legacy k-value shim to every record.
func FixK(t evalfmt.Table) evalfmt.Table {
	out := make(evalfmt.Table, len(t))
	for i := range t {
		r := t[i]
		if k, ok := legacyK[r.K]; ok {
			r.K = k
		}
		out[i] = r
	}
	return out
}

// ExpandRemap resolves records with an unset remap flag. Such a record
// predates the flag and measured both interpretations at once, so it
// fans out into a remap-off and a remap-on row for comparison. The
// SIndex family is exempt: it never remaps, and its unset flag
// resolves to remap-on only.
//
// The remap-on rows keep their input positions; the fanned-out
// remap-off copies follow the table.
func ExpandRemap(t evalfmt.Table) evalfmt.Table {
	out := make(evalfmt.Table, 0, len(t))
	var expanded evalfmt.Table
	for i := range t {
		r := t[i]
		if r.Remap == evalfmt.RemapUnset {
			if r.Index != CanonSIndex {
				off := r
				off.Remap = evalfmt.RemapOff
				expanded = append(expanded, off)
			}
			r.Remap = evalfmt.RemapOn
		}
		out = append(out, r)
	}
	return append(out, expanded...)
}

// MergeVariants rewrites raw identifiers that denote the same index
// library to one canonical display name. Identifiers that are neither
// mergeable nor already canonical are reported through warn once each
// and passed through; downstream ordering is undefined for them.
func MergeVariants(t evalfmt.Table, warn WarnFunc) evalfmt.Table {
	warned := make(map[string]bool)
	out := make(evalfmt.Table, len(t))
	for i := range t {
		r := t[i]
		switch r.Index {
		case rawSDSLByte32, rawSDSLInt32:
			r.Index = CanonSDSL
		case CanonLibsais, CanonSDSL, CanonAWRY, CanonSIndex:
			// Already canonical.
		default:
			if !warned[r.Index] {
				warned[r.Index] = true
				warn.warnf("unrecognized index %q passes through unnormalized", r.Index)
			}
		}
		out[i] = r
	}
	return out
}

// PruneUnsupported drops the (SDSL FM, remap-off) rows produced by
// remap expansion. The sdsl FM index requires a remapped alphabet, so
// that combination is not a meaningful configuration.
func PruneUnsupported(t evalfmt.Table) evalfmt.Table {
	out := make(evalfmt.Table, 0, len(t))
	for i := range t {
		r := t[i]
		if r.Index == CanonSDSL && r.Remap == evalfmt.RemapOff {
			continue
		}
		out = append(out, r)
	}
	return out
}
