// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/u-index/uindex-eval/evalunit"
)

// tableColumns is the column set of the comparison table dump, in its
// historical order: configuration identity first, then sizes, build
// costs, and query metrics.
var tableColumns = []struct {
	name string
	cell func(*Record) string
}{
	{"index", func(r *Record) string { return r.Index }},
	{"k", func(r *Record) string { return strconv.Itoa(r.K) }},
	{"l", func(r *Record) string { return strconv.Itoa(r.L) }},
	{"remap", func(r *Record) string { return strconv.Itoa(int(r.Remap)) }},
	{"store_ms", func(r *Record) string { return strconv.Itoa(r.StoreMS) }},
	{"sa_sampl", func(r *Record) string { return strconv.Itoa(r.SASampling) }},
	{"int_width", func(r *Record) string { return strconv.Itoa(r.IntWidth) }},
	{"sketch_sz", func(r *Record) string { return fmtFloat(r.SketchMB) }},
	{"index_sz", func(r *Record) string { return fmtFloat(r.IndexMB) }},
	{"total_sz", func(r *Record) string { return fmtFloat(r.TotalMB) }},
	{"Sketch", func(r *Record) string { return fmtFloat(r.SketchSec) }},
	{"Build", func(r *Record) string { return fmtFloat(r.BuildSec) }},
	{"us/q", func(r *Record) string { return fmtFloat(r.USPerQuery) }},
	{"sketch%", func(r *Record) string { return fmtInt(r.SketchPct) }},
	{"search%", func(r *Record) string { return fmtInt(r.SearchPct) }},
	{"check%", func(r *Record) string { return fmtInt(r.CheckPct) }},
	{"invert%", func(r *Record) string { return fmtInt(r.InvertPct) }},
	{"mism/q", func(r *Record) string { return fmtInt(r.MismPerQuery) }},
}

func fmtFloat(o OptFloat) string {
	if !o.OK {
		return ""
	}
	return evalunit.TableScaler.Format(o.Float)
}

func fmtInt(o OptInt) string {
	if !o.OK {
		return ""
	}
	return strconv.Itoa(o.Int)
}

// WriteTable writes t as a plain-text comparison table. The first
// column is left-aligned, all value columns are right-aligned.
func WriteTable(w io.Writer, t Table) error {
	rows := make([][]string, 0, len(t)+1)
	header := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = col.name
	}
	rows = append(rows, header)
	for i := range t {
		row := make([]string, len(tableColumns))
		for j, col := range tableColumns {
			row[j] = col.cell(&t[i])
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(tableColumns))
	for _, row := range rows {
		for j, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("  ")
			}
			if j == 0 {
				fmt.Fprintf(&sb, "%-*s", widths[j], cell)
			} else {
				fmt.Fprintf(&sb, "%*s", widths[j], cell)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes t in CSV form with the same columns as WriteTable.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = col.name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(tableColumns))
	for i := range t {
		for j, col := range tableColumns {
			row[j] = col.cell(&t[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
