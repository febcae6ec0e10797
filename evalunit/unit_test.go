// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalunit

import "testing"

func TestBytesToMB(t *testing.T) {
	tests := []struct {
		bytes int
		want  float64
	}{
		{0, 0},
		{1 << 20, 1},
		{829947904, 791.5},
	}
	for _, test := range tests {
		if got := BytesToMB(test.bytes); got != test.want {
			t.Errorf("BytesToMB(%d) = %v, want %v", test.bytes, got, test.want)
		}
	}
}

func TestPerQueryMicros(t *testing.T) {
	if got := PerQueryMicros(1, 10000); got != 100 {
		t.Errorf("PerQueryMicros(1, 10000) = %v, want 100", got)
	}
	if got := PerQueryMicros(0, 10000); got != 0 {
		t.Errorf("PerQueryMicros(0, 10000) = %v, want 0", got)
	}
}

func TestTruncPercent(t *testing.T) {
	tests := []struct {
		part, total float64
		want        int
		ok          bool
	}{
		{1, 3, 33, true},
		{0.999, 1, 99, true},
		{0, 5, 0, true},
		{5, 5, 100, true},
		{1, 0, 0, false},
	}
	for _, test := range tests {
		got, ok := TruncPercent(test.part, test.total)
		if got != test.want || ok != test.ok {
			t.Errorf("TruncPercent(%v, %v) = %d, %v, want %d, %v",
				test.part, test.total, got, ok, test.want, test.ok)
		}
	}
}

func TestScalerFormat(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{494.5, "494.50"},
		{0, "0.00"},
		{1234.567, "1234.57"},
	}
	for _, test := range tests {
		if got := TableScaler.Format(test.val); got != test.want {
			t.Errorf("Format(%v) = %q, want %q", test.val, got, test.want)
		}
	}
}
