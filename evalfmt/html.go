// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalfmt

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("table").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<table class='uindexstat'>
<thead>
<tr>{{range .Header}}<th>{{.}}{{end}}
</thead>
<tbody>
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</tbody>
</table>
`)))

// WriteHTML writes t as an HTML comparison table with the same columns
// as WriteTable.
func WriteHTML(w io.Writer, t Table) error {
	header := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		header[i] = col.name
	}
	rows := make([][]string, len(t))
	for i := range t {
		row := make([]string, len(tableColumns))
		for j, col := range tableColumns {
			row[j] = col.cell(&t[i])
		}
		rows[i] = row
	}
	return htmlTemplate.Execute(w, struct {
		Header []string
		Rows   [][]string
	}{header, rows})
}
