// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/stave"
)

func TestDump(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, dump(&b, []byte{
		0b00100000, 0b00111010, 0b00000001, 0b01000100,
		0b00000001, 0b01000100, 0b00000001, 0b01000100,
		0b01100100, 0,
	}))
	assert.Equal(t, ""+
		"0010 0000  0011 1010  0000 0001  0100 0100  "+
		"0000 0001  0100 0100  0000 0001  0100 0100\n"+
		"0110 0100  0000 0000\n", b.String())
}

func TestDescribe(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{stave.ByteError{Offset: 3, Byte: 0b00001100},
			"invalid byte 0b00001100 at offset 3"},
		{stave.TerminatorError{Offset: 5},
			"unexpected terminator at offset 5"},
		{stave.InternalError{Offset: 7, Reason: "text row overflows block"},
			"internal error at offset 7: text row overflows block"},
		{errors.Wrap(os.ErrNotExist, "read"),
			"read: file does not exist"},
		{stave.ErrNoTerminator, "missing terminator"},
		{stave.ErrWidth, "width less than 5"},
	} {
		assert.Equal(t, tc.want, describe(tc.err))
	}
}

func TestParseWidth(t *testing.T) {
	w, err := parseWidth("80")
	assert.NoError(t, err)
	assert.Equal(t, 80, w)
	for _, s := range []string{"4", "256", "wide", ""} {
		_, err := parseWidth(s)
		assert.Error(t, err, s)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "config.yaml")

	c, err := loadConfig(filepath.Join(dir, "missing.yaml"), false)
	assert.NoError(t, err)
	assert.Equal(t, config{}, c)
	_, err = loadConfig(filepath.Join(dir, "missing.yaml"), true)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte(
		"width: 72\ncharset: cp437\ntempo: 96\nvelocity: 80\n"), 0666))
	c, err = loadConfig(fn, true)
	require.NoError(t, err)
	assert.Equal(t, config{Width: 72, Charset: "cp437", Tempo: 96,
		Velocity: 80}, c)

	require.NoError(t, os.WriteFile(fn, []byte("\n"), 0666))
	c, err = loadConfig(fn, true)
	assert.NoError(t, err)
	assert.Equal(t, config{}, c)

	for _, s := range []string{
		"width: 3\n",
		"charset: utf16\n",
		"velocity: 200\n",
		"colour: blue\n",
	} {
		require.NoError(t, os.WriteFile(fn, []byte(s), 0666))
		_, err = loadConfig(fn, true)
		assert.Error(t, err, s)
	}
}

func TestOutput(t *testing.T) {
	var b bytes.Buffer
	w := newOutput(&b, "ebcdic")
	_, err := w.Write([]byte("|-"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{0x4f, 0x60}, b.Bytes())

	b.Reset()
	w = newOutput(&b, "ascii")
	_, err = w.Write([]byte("|-"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "|-", b.String())
}
