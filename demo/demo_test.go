// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/stave"
)

func TestDecode(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, ok := Lookup(name)
			require.True(t, ok)
			assert.Equal(t, name, e.Name)
			sheet, err := stave.Decode(e.Data)
			require.NoError(t, err)
			assert.NotEmpty(t, sheet.Blocks)
			s, err := sheet.Render(e.Width)
			require.NoError(t, err)
			for _, l := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
				assert.LessOrEqual(t, len(l), e.Width)
			}
		})
	}
}

func TestSongMeasures(t *testing.T) {
	sheet, err := stave.Decode(Song.Data)
	require.NoError(t, err)
	last := sheet.Groups[len(sheet.Groups)-1]
	assert.Equal(t, 4, last.Measure)
	assert.True(t, last.Tied)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("")
	assert.True(t, ok)
	assert.Equal(t, "song", e.Name)
	_, ok = Lookup("sonata")
	assert.False(t, ok)
	assert.Equal(t, []string{
		"song", "clef", "key", "time", "note", "text", "barline",
	}, Names())
}
