// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAllBytes(t *testing.T) {
	assert := assert.New(t)
	var count [Invalid + 1]int
	for i := 0; i < 256; i++ {
		k := Classify(byte(i))
		count[k]++
		assert.GreaterOrEqual(k.Len(), 1)
		assert.LessOrEqual(k.Len(), 4)
	}
	assert.Equal([Invalid + 1]int{
		Terminator: 1,
		Note:       32,
		Beamed:     32,
		Time:       64,
		Key:        64,
		Barline:    16,
		Text:       16,
		Clef:       4,
		Invalid:    27,
	}, count)
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		kind Kind
		len  int
	}{
		{0b00000000, Terminator, 1},
		{0b00000001, Note, 2},
		{0b10111001, Note, 2},
		{0b00000101, Beamed, 3},
		{0b00111010, Time, 1},
		{0b00000111, Key, 4},
		{0b01010100, Barline, 1},
		{0b00101000, Text, 3},
		{0b00100000, Clef, 1},
		{0b10100000, Clef, 1},
		{0b00001100, Invalid, 1},
		{0b00010000, Invalid, 1},
		{0b01000000, Invalid, 1},
	} {
		k := Classify(tc.b)
		if k != tc.kind || k.Len() != tc.len {
			t.Errorf("Classify(%#08b) = %v (len %d), want %v (len %d)",
				tc.b, k, k.Len(), tc.kind, tc.len)
		}
	}
}

func TestDecodeNote(t *testing.T) {
	assert := assert.New(t)

	n := DecodeNote(0b00000001, 0b01000100)
	assert.Equal(LowE, n.Pitch)
	assert.Equal(Quarter, n.Duration)
	assert.Equal(2, n.Stem)
	assert.False(n.Down)
	assert.Zero(n.Flags)

	n = DecodeNote(0b11111001, 0b11101001)
	assert.Equal(HighC, n.Pitch)
	assert.Equal(Sixteenth, n.Duration)
	assert.Equal(Sharp, n.Accidental)
	assert.Equal(Tenuto, n.Articulation)
	assert.True(n.Tie)
	assert.True(n.Dot)
	assert.True(n.Down)
	assert.Equal(2, n.Flags)

	n = DecodeNote(0b00000001, 0b00100000)
	assert.True(n.IsRest())
	assert.Equal(Whole, n.Duration)
	assert.Zero(n.Stem)

	for _, b := range []byte{0b00000100, 0b01110100} {
		n = DecodeNote(0b00000001, b)
		assert.Equal(BadDuration, n.Duration)
		assert.False(n.Duration.Valid())
	}
}

func TestDecodeBeamed(t *testing.T) {
	assert := assert.New(t)

	n := DecodeBeamed(0b00000101, 0b00110110, 0b10000001)
	assert.Equal(LowG, n.Pitch)
	assert.Equal(4, n.Stem)
	assert.False(n.Down)
	assert.Equal(0, n.Left)
	assert.Equal(1, n.Right)
	assert.Equal(BeamTag, n.Tag)
	assert.Equal(Eighth, n.Duration)

	n = DecodeBeamed(0b10100101, 0b01111001, 0b10101011)
	assert.Equal(HighC, n.Pitch)
	assert.True(n.Down)
	assert.True(n.Tie)
	assert.Equal(Staccato, n.Articulation)
	assert.Equal(4, n.Stem)
	assert.Equal(2, n.Left)
	assert.Equal(3, n.Right)
	assert.Equal(2, n.Narrow)
	assert.Equal(3, n.WideSide())
	assert.Equal(ThirtySecond, n.Duration)
	assert.Equal(-1, n.Orientation())
}

func TestDecodeTime(t *testing.T) {
	assert.Equal(t, TimeValue{4, 4}, DecodeTime(0b00111010))
	assert.Equal(t, TimeValue{6, 8}, DecodeTime(0b01011110))
	assert.Equal(t, TimeValue{16, 1}, DecodeTime(0b11110010))
}

func TestDecodeKey(t *testing.T) {
	assert := assert.New(t)

	// E major
	k := DecodeKey(0b00000111, 0b11000000, 0b00000111, 0b11110110)
	assert.True(k.Reverse)
	assert.Zero(k.Flats)
	assert.Equal([]Row{HighF, HighC, HighG, HighD}, k.Rows())
	assert.Equal("F# C# G# D#", k.String())

	// F major with a natural on high E
	k = DecodeKey(0b00100011, 0b00001000, 0b00000111, 0b00001000)
	assert.Equal(Flat, k.Accidental(LowF))
	assert.Equal(Natural, k.Accidental(HighE))
	assert.Equal("Fb E~", k.String())

	assert.Equal("none", DecodeKey(0b00000111, 0b11000000, 0b00000111,
		0b11000000).String())
}

func TestDecodeText(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(TextValue{' ', 'm', 'p', ' ', ' '},
		DecodeText(0b00101000, 0b10111010, 0b00100010))
	v := DecodeText(0b00011000, 0b11100000, 0b11011111)
	assert.Equal(byte(NullChar), v[0])
	assert.Equal(byte(InvalidChar), v[1])
	assert.Equal(byte(InvalidChar), v[2])
	assert.Equal(byte(InvalidChar), v[3])
	assert.Equal(byte('s'), v[4])
	assert.Equal("_EEEs", v.String())
}

func TestDecodeBarlineClef(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SingleWide, DecodeBarline(0b00000100))
	assert.Equal(BlankColumn, DecodeBarline(0b01010100))
	assert.Equal(RightRepeatSlim, DecodeBarline(0b10010100))
	assert.Equal(BadBarline, DecodeBarline(0b11110100))
	assert.Equal(Treble, DecodeClef(0b00100000))
	assert.Equal(Bass, DecodeClef(0b01100000))
	assert.Equal(Percussion, DecodeClef(0b10100000))
	assert.Equal(BadClef, DecodeClef(0b11100000))
}

func TestGroupString(t *testing.T) {
	for _, tc := range []struct {
		b    []byte
		want string
	}{
		{[]byte{0b00000001, 0b01000100}, "quarter low E"},
		{[]byte{0b00000001, 0b01010000}, "eighth rest"},
		{[]byte{0b00101001, 0b10111001}, "dotted half high C flat staccato"},
		{[]byte{0b00000101, 0b00110110, 0b10000001},
			"beamed eighth low G, stem 4 up, beams 0/1"},
		{[]byte{0b00000101, 0b00000110, 0b00000001},
			"beamed eighth low G, stem 1 up, beams 0/1 bad tag"},
		{[]byte{0b00111010}, "time 4/4"},
		{[]byte{0b00000111, 0b11000000, 0b00000111, 0b11110110},
			"key F# C# G# D#"},
		{[]byte{0b00010100}, "barline double wide"},
		{[]byte{0b00101000, 0b10111010, 0b00100010}, `text " mp  "`},
		{[]byte{0b01100000}, "bass clef"},
		{[]byte{0b00001100}, "invalid"},
		{[]byte{0}, "end"},
	} {
		if s := DecodeGroup(tc.b).String(); s != tc.want {
			t.Errorf("DecodeGroup(%08b) = %q, want %q", tc.b, s, tc.want)
		}
	}
}
