// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalfmt

import (
	"encoding/csv"
	"strings"
	"testing"
)

func writeTestTable() Table {
	return Table{
		{
			Index: "libsais", K: 4, L: 32, Remap: RemapOn,
			StoreMS: 1, SASampling: NotApplicable, IntWidth: 64,
			SketchMB: Float(98.1), IndexMB: Float(396.4), TotalMB: Float(494.5),
			SketchSec: Float(1.52), BuildSec: Float(40.3),
			USPerQuery:   Float(196),
			SketchPct:    Int(17),
			SearchPct:    Int(39),
			CheckPct:     Int(26),
			InvertPct:    Int(15),
			MismPerQuery: Int(0),
		},
		{
			Index: "SIndex", K: NoSketch, L: NoSketch, Remap: RemapOn,
			StoreMS: NotApplicable, SASampling: NotApplicable, IntWidth: NotApplicable,
			TotalMB:      Float(24.7),
			MismPerQuery: Int(0),
			// No query time reported: the percentage columns
			// must come out empty, not zero.
		},
	}
}

func TestWriteTable(t *testing.T) {
	var sb strings.Builder
	if err := WriteTable(&sb, writeTestTable()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "index") || !strings.Contains(lines[0], "mism/q") {
		t.Errorf("bad header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "494.50") {
		t.Errorf("row 1 missing formatted total size: %q", lines[1])
	}
	if !strings.Contains(lines[1], "39") {
		t.Errorf("row 1 missing search%%: %q", lines[1])
	}
	if strings.Contains(lines[2], "39") {
		t.Errorf("row 2 has a stray value: %q", lines[2])
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, writeTestTable()); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "index" {
		t.Errorf("header[0]: got %q, want %q", rows[0][0], "index")
	}
	if rows[1][0] != "libsais" {
		t.Errorf("row 1 index: got %q", rows[1][0])
	}
	// Absent percentages are empty cells.
	for i, name := range rows[0] {
		if name == "search%" {
			if rows[1][i] != "39" {
				t.Errorf("row 1 search%%: got %q, want %q", rows[1][i], "39")
			}
			if rows[2][i] != "" {
				t.Errorf("row 2 search%%: got %q, want empty", rows[2][i])
			}
		}
	}
}

func TestWriteHTML(t *testing.T) {
	var sb strings.Builder
	if err := WriteHTML(&sb, writeTestTable()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"<table", "<th>index", "<td>libsais", "<td>494.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
