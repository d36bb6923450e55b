// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the byte-group grammar of the stave
// notation encoding: classification of the first byte of a group and
// decoding of the bit fields of each group type.
//
// Bits are numbered from 1, the least significant bit of the first
// byte of a group, to 8n, the most significant bit of its nth byte.
package coding // import "github.com/unixdj/stave/coding"

// A Kind identifies the type of a byte group.
type Kind int

// Byte group kinds.
const (
	Terminator Kind = iota // end of data
	Note                   // unbeamed note or rest
	Beamed                 // beamed note
	Time                   // time signature change
	Key                    // key signature change
	Barline                // barline or blank column
	Text                   // dynamics text under the previous block
	Clef                   // clef
	Invalid                // unassigned bit pattern
)

var kindNames = [...]string{
	"end", "note", "beamed", "time", "key", "barline", "text", "clef",
	"invalid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Len returns the number of bytes in a group of kind k.
func (k Kind) Len() int {
	return [...]int{1, 2, 3, 1, 4, 1, 3, 1, 1}[min(max(k, 0), Invalid)]
}

// Classify returns the kind of the group starting with b.
// Masks are tested from the fewest to the most significant bits, and
// a pattern matching none of them is Invalid.
func Classify(b byte) Kind {
	switch {
	case b == 0:
		return Terminator
	case b&0b111 == 0b001:
		return Note
	case b&0b111 == 0b101:
		return Beamed
	case b&0b11 == 0b10:
		return Time
	case b&0b11 == 0b11:
		return Key
	case b&0b1111 == 0b0100:
		return Barline
	case b&0b1111 == 0b1000:
		return Text
	case b&0b111111 == 0b100000:
		return Clef
	}
	return Invalid
}

// A Row is a row position within a noteblock, from the text row at
// the bottom to high B at the top.  Odd rows are staff spaces, even
// rows from 2 up are lines or ledger line positions.
type Row int

// Row positions.
const (
	TextRow Row = iota // dynamics text
	LowB
	LowC  // ledger line below the staff
	LowD
	LowE  // bottom staff line
	LowF
	LowG
	LowA
	MidB  // middle staff line
	HighC
	HighD
	HighE
	HighF // top staff line
	HighG
	HighA // ledger line above the staff
	HighB

	Rows = 16 // number of rows in a noteblock
)

var rowNames = [Rows]string{
	"text", "low B", "low C", "low D", "low E", "low F", "low G",
	"low A", "middle B", "high C", "high D", "high E", "high F",
	"high G", "high A", "high B",
}

func (r Row) String() string {
	if r < 0 || r >= Rows {
		return "invalid row"
	}
	return rowNames[r]
}

// Letter returns the note name of r, or 0 for the text row.
func (r Row) Letter() byte {
	if r <= TextRow || r >= Rows {
		return 0
	}
	return "BCDEFGA"[(r-1)%7]
}

// IsLine reports whether r is a staff line or ledger line position.
func (r Row) IsLine() bool { return r > TextRow && r&1 == 0 }

// An Accidental is a sharp, flat or natural sign.
type Accidental int

// Accidentals.
const (
	NoAccidental Accidental = iota
	Flat
	Natural
	Sharp
)

// Char returns the character drawn for a, or 0 for no accidental.
func (a Accidental) Char() byte { return "\x00b~#"[a&3] }

// Semitones returns the pitch alteration of a.
func (a Accidental) Semitones() int { return [...]int{0, -1, 0, 1}[a&3] }

func (a Accidental) String() string {
	return [...]string{"", "flat", "natural", "sharp"}[a&3]
}

// An Articulation is a mark drawn beside the notehead.
type Articulation int

// Articulations.
const (
	NoArticulation Articulation = iota
	Staccato
	Accent
	Tenuto
)

// Char returns the character drawn for a, or 0 for no articulation.
func (a Articulation) Char() byte { return "\x00.>="[a&3] }

func (a Articulation) String() string {
	return [...]string{"", "staccato", "accent", "tenuto"}[a&3]
}

// A Duration is a note value.
type Duration int

// Note values.  Only Breve to Sixteenth are encoded directly;
// ThirtySecond is reached by triple beams.
const (
	BadDuration Duration = iota // code 0 or 7
	Breve                       // double whole
	Whole
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
)

var durationNames = [...]string{
	"invalid", "breve", "whole", "half", "quarter", "eighth",
	"sixteenth", "thirty-second",
}

func (d Duration) String() string {
	if d < 0 || int(d) >= len(durationNames) {
		return durationNames[0]
	}
	return durationNames[d]
}

// Valid reports whether d is a note value.
func (d Duration) Valid() bool { return Breve <= d && d <= ThirtySecond }

// Stemmed reports whether notes of value d have stems.
func (d Duration) Stemmed() bool { return Half <= d && d <= ThirtySecond }

// Filled reports whether notes of value d have filled noteheads.
func (d Duration) Filled() bool { return Quarter <= d && d <= ThirtySecond }

// Ticks returns the length of d in 64ths of a quarter note.
func (d Duration) Ticks() int {
	if !d.Valid() {
		return 0
	}
	return 1024 >> d
}

// Flags returns the number of flags on an unbeamed note of value d.
func (d Duration) Flags() int {
	if !d.Valid() {
		return 0
	}
	return max(int(d-Quarter), 0)
}
