// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalchart renders the multi-panel comparison report from a
// normalized measurement table.
//
// A figure is a vertical stack of grouped-bar panels sharing one
// legend. Each panel is described by a PanelSpec; the renderer is one
// generic routine consuming the spec list, so dataset-specific panel
// sets and axis limits are configuration rather than code.
package evalchart

import (
	"fmt"

	"github.com/u-index/uindex-eval/evalproc"
)

// A PanelSpec describes one grouped-bar panel. The primary metric is
// drawn as solid bars; the overlay metric is drawn at the same
// coordinates as semi-transparent bars, visualizing the overlay's
// share of the primary.
//
// Y axes are base-2 logarithmic with fixed limits, so the limits must
// be positive powers of two tuned to the dataset.
type PanelSpec struct {
	Primary evalproc.Metric `json:"primary"`
	Overlay evalproc.Metric `json:"overlay"`
	YLabel  string          `json:"yLabel"`
	YMin    float64         `json:"yMin"`
	YMax    float64         `json:"yMax"`

	// Caption is the one-entry mini-legend text explaining the
	// overlay series.
	Caption string `json:"caption"`
}

// Check validates a panel specification.
func (p *PanelSpec) Check() error {
	if err := p.Primary.Check(); err != nil {
		return err
	}
	if err := p.Overlay.Check(); err != nil {
		return err
	}
	if !(p.YMin > 0) || !(p.YMax > p.YMin) {
		return fmt.Errorf("panel %q: log axis limits must satisfy 0 < yMin < yMax, have [%g, %g]",
			p.YLabel, p.YMin, p.YMax)
	}
	return nil
}

// Preset returns a named panel set.
//
// The two observed report variants disagreed on the panel set, so both
// are kept: "default" is the three-panel size/build/query report, and
// "memory" appends a resident-memory panel.
func Preset(name string) ([]PanelSpec, error) {
	base := []PanelSpec{
		{
			Primary: evalproc.MetricTotalSize,
			Overlay: evalproc.MetricSketchSize,
			YLabel:  "Size (MB)",
			YMin:    1 << 1,
			YMax:    1 << 11,
			Caption: "Size of minimizer positions and remap",
		},
		{
			Primary: evalproc.MetricTotalTime,
			Overlay: evalproc.MetricSketchTime,
			YLabel:  "Build (s)",
			YMin:    0.25,
			YMax:    1 << 7,
			Caption: "Time sketching the input",
		},
		{
			Primary: evalproc.MetricQueryMicros,
			Overlay: evalproc.MetricSearchMicros,
			YLabel:  "Query (us)",
			YMin:    1 << 0,
			YMax:    1 << 16,
			Caption: "Time spent in inner LOCATE",
		},
	}
	switch name {
	case "", "default":
		return base, nil
	case "memory":
		return append(base, PanelSpec{
			Primary: evalproc.MetricMemBuild,
			Overlay: evalproc.MetricMemInit,
			YLabel:  "Memory (MB)",
			YMin:    1 << 3,
			YMax:    1 << 15,
			Caption: "Memory before sketching",
		}), nil
	}
	return nil, fmt.Errorf("unknown panel preset %q (have: default, memory)", name)
}
