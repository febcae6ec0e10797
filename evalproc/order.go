// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalproc

import "fmt"

// paramOrder is the fixed total order over parameter labels: the
// libsais family crossed with its remap and store-mode flags, the two
// merged-or-pruned FM families, and the exempt SIndex family. This is
// a closed table; a label outside it has no defined position.
var paramOrder = []string{
	"libsais",
	"libsais -H",
	"libsais -S",
	"libsais -H -S",
	"SDSL FM",
	"AWRY",
	"AWRY -H",
	"SIndex",
}

var paramRank = mkParamRank()

func mkParamRank() map[string]int {
	m := make(map[string]int, len(paramOrder))
	for i, label := range paramOrder {
		m[label] = i
	}
	return m
}

// Rank returns the position of a parameter label in the fixed
// configuration order. A label outside the order table is a
// configuration error: sorting and grouping are undefined for it, so
// Rank never falls back to a default position.
func Rank(label string) (int, error) {
	r, ok := paramRank[label]
	if !ok {
		return 0, fmt.Errorf("parameter label %q is not in the configuration order table", label)
	}
	return r, nil
}

// Labels returns the parameter labels in rank order.
func Labels() []string {
	return append([]string(nil), paramOrder...)
}
