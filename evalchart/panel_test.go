// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/u-index/uindex-eval/evalproc"
)

func TestPreset(t *testing.T) {
	dflt, err := Preset("default")
	require.NoError(t, err)
	require.Len(t, dflt, 3)
	for i := range dflt {
		assert.NoError(t, dflt[i].Check(), "panel %d", i)
	}
	assert.Equal(t, evalproc.MetricTotalSize, dflt[0].Primary)
	assert.Equal(t, "Query (us)", dflt[2].YLabel)

	empty, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, dflt, empty, "the empty name is the default preset")

	mem, err := Preset("memory")
	require.NoError(t, err)
	require.Len(t, mem, 4)
	assert.Equal(t, dflt, mem[:3], "the memory preset extends the default")
	assert.Equal(t, evalproc.MetricMemBuild, mem[3].Primary)
	assert.NoError(t, mem[3].Check())

	_, err = Preset("bogus")
	assert.Error(t, err)
}

func TestPanelSpecCheck(t *testing.T) {
	good := PanelSpec{
		Primary: evalproc.MetricTotalSize,
		Overlay: evalproc.MetricSketchSize,
		YLabel:  "Size (MB)",
		YMin:    2,
		YMax:    2048,
	}
	assert.NoError(t, good.Check())

	badMetric := good
	badMetric.Primary = "bogus"
	assert.Error(t, badMetric.Check())

	badOverlay := good
	badOverlay.Overlay = "bogus"
	assert.Error(t, badOverlay.Check())

	// Log axes cannot reach zero or run backwards.
	for _, lim := range []struct{ min, max float64 }{
		{0, 2048},
		{-1, 2048},
		{2048, 2},
		{2, 2},
	} {
		p := good
		p.YMin, p.YMax = lim.min, lim.max
		assert.Error(t, p.Check(), "limits [%g, %g]", lim.min, lim.max)
	}
}
