// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"strings"
)

// A NoteValue holds the decoded fields of a note, beamed note or rest.
type NoteValue struct {
	Pitch        Row          // notehead row; TextRow for a rest
	Duration     Duration     // note value
	Dot          bool         // dotted
	Accidental   Accidental   // explicit accidental
	Articulation Articulation // mark beside the notehead
	Tie          bool         // tied to the next note
	Stem         int          // stem length in rows, excluding the notehead
	Down         bool         // stem below the notehead
	Flags        int          // flags on an unbeamed stem

	// Beamed notes only.
	Beamed      bool
	Left, Right int // beams on each side of the stem, 0-3
	Narrow      int // narrow beams on the three-column side, 0-3
	Tag         int // validity tag, BeamTag in a well-formed group
}

// BeamTag is the value of the two most significant bits of the last
// byte of a well-formed beamed note.
const BeamTag = 0b10

// Orientation returns +1 for a stem above the notehead, -1 below.
func (n NoteValue) Orientation() int {
	if n.Down {
		return -1
	}
	return 1
}

// IsRest reports whether n is a rest.
func (n NoteValue) IsRest() bool { return !n.Beamed && n.Pitch == TextRow }

// Beams returns the number of beams on the side of the stem that has
// the most.
func (n NoteValue) Beams() int { return max(n.Left, n.Right) }

// WideSide returns the number of beams on the side of the stem that is
// three columns wide: the left side of an up stem, the right side of a
// down stem.  Narrow beams are drawn on that side only.
func (n NoteValue) WideSide() int {
	if n.Down {
		return n.Right
	}
	return n.Left
}

// DecodeNote decodes an unbeamed note or rest.
//
//	bits 1-3   001
//	bits 4-5   accidental
//	bits 6-7   articulation
//	bit  8     tie forward
//	bits 9-12  pitch row, 0 for a rest
//	bits 13-15 duration: 1 breve to 6 sixteenth, 0 and 7 invalid
//	bit  16    dot
func DecodeNote(b1, b2 byte) NoteValue {
	n := NoteValue{
		Pitch:        Row(b2 & 0xf),
		Accidental:   Accidental(b1 >> 3 & 3),
		Articulation: Articulation(b1 >> 5 & 3),
		Tie:          b1&0x80 != 0,
		Dot:          b2&0x80 != 0,
	}
	if d := Duration(b2 >> 4 & 7); Breve <= d && d <= Sixteenth {
		n.Duration = d
	}
	n.Down = n.Pitch > MidB
	if n.Duration.Stemmed() {
		n.Stem = 2
		n.Flags = n.Duration.Flags()
	}
	return n
}

// DecodeBeamed decodes a beamed note.
//
//	bits 1-3   101
//	bits 4-5   accidental
//	bits 6-7   articulation
//	bit  8     tie forward
//	bits 9-12  pitch row, 1-15
//	bits 13-14 stem length - 1
//	bit  15    stem down
//	bit  16    dot
//	bits 17-18 beams right of the stem
//	bits 19-20 beams left of the stem
//	bits 21-22 narrow beams
//	bits 23-24 tag, always 10
//
// The duration of a beamed note follows from its beam count.
func DecodeBeamed(b1, b2, b3 byte) NoteValue {
	n := NoteValue{
		Pitch:        Row(b2 & 0xf),
		Accidental:   Accidental(b1 >> 3 & 3),
		Articulation: Articulation(b1 >> 5 & 3),
		Tie:          b1&0x80 != 0,
		Stem:         int(b2>>4&3) + 1,
		Down:         b2&0x40 != 0,
		Dot:          b2&0x80 != 0,
		Beamed:       true,
		Right:        int(b3 & 3),
		Left:         int(b3 >> 2 & 3),
		Narrow:       int(b3 >> 4 & 3),
		Tag:          int(b3 >> 6),
	}
	n.Duration = Eighth + Duration(max(n.Beams(), 1)-1)
	return n
}

// A TimeValue is a time signature.
type TimeValue struct {
	Top, Bottom int
}

// DecodeTime decodes a time signature change.
//
//	bits 1-2 10
//	bits 3-4 bottom number: 1, 2, 4 or 8
//	bits 5-8 top number - 1
func DecodeTime(b byte) TimeValue {
	return TimeValue{Top: int(b>>4) + 1, Bottom: 1 << (b >> 2 & 3)}
}

// KeyOrder lists the rows visited when drawing a key signature, in the
// order of flats.  Keys with sharps set Reverse to visit them in the
// order of sharps.
var KeyOrder = [11]Row{
	LowF, MidB, HighE, LowE, LowA, HighD, HighG, LowD, LowG, HighC, HighF,
}

// A KeyValue is a key signature.  Bit r of Flats and Sharps refers to
// row r; a row set in both carries a natural sign.
type KeyValue struct {
	Reverse       bool // visit KeyOrder backwards
	Flats, Sharps uint16
}

// keyMask covers the rows in KeyOrder.
const keyMask = 1<<LowD | 1<<LowE | 1<<LowF | 1<<LowG | 1<<LowA |
	1<<MidB | 1<<HighC | 1<<HighD | 1<<HighE | 1<<HighF | 1<<HighG

// DecodeKey decodes a key signature change.  The first two and the
// last two bytes form little-endian 16-bit words; bits 4-14 of the
// first mark flats and bits 4-14 of the second mark sharps, where bit
// r+1 of a word refers to row r.  The rest are filler.
//
//	bits 1-2 11
//	bit  3   reverse order
func DecodeKey(b1, b2, b3, b4 byte) KeyValue {
	return KeyValue{
		Reverse: b1&4 != 0,
		Flats:   (uint16(b2)<<8 | uint16(b1)) & keyMask,
		Sharps:  (uint16(b4)<<8 | uint16(b3)) & keyMask,
	}
}

// Accidental returns the accidental k puts on row r.
func (k KeyValue) Accidental(r Row) Accidental {
	if r < 0 || r >= Rows {
		return NoAccidental
	}
	switch f, s := k.Flats>>r&1 != 0, k.Sharps>>r&1 != 0; {
	case f && s:
		return Natural
	case f:
		return Flat
	case s:
		return Sharp
	}
	return NoAccidental
}

// Rows returns the rows of KeyOrder in drawing order, with the
// accidental drawn on each; rows without one are skipped.
func (k KeyValue) Rows() []Row {
	var rs []Row
	for i := range KeyOrder {
		if k.Reverse {
			i = len(KeyOrder) - 1 - i
		}
		if r := KeyOrder[i]; k.Accidental(r) != NoAccidental {
			rs = append(rs, r)
		}
	}
	return rs
}

// A BarlineValue is a barline subtype.
type BarlineValue int

// Barline subtypes.
const (
	SingleWide BarlineValue = iota
	DoubleWide
	LeftRepeatWide
	RightRepeatWide
	BothRepeats
	BlankColumn
	SingleSlim
	DoubleSlim
	LeftRepeatSlim
	RightRepeatSlim
	BadBarline // subtypes 10 to 15
)

var barlineNames = [...]string{
	"single wide", "double wide", "left repeat wide", "right repeat wide",
	"both repeats", "blank column", "single slim", "double slim",
	"left repeat slim", "right repeat slim", "invalid",
}

func (v BarlineValue) String() string {
	return barlineNames[min(max(v, 0), BadBarline)]
}

// DecodeBarline decodes a barline.
//
//	bits 1-4 0100
//	bits 5-8 subtype
func DecodeBarline(b byte) BarlineValue {
	return min(BarlineValue(b>>4), BadBarline)
}

// A ClefValue is a clef subtype.
type ClefValue int

// Clefs.
const (
	Treble ClefValue = iota
	Bass
	Percussion
	BadClef
)

func (v ClefValue) String() string {
	return [...]string{"treble", "bass", "percussion", "invalid"}[v&3]
}

// DecodeClef decodes a clef.
//
//	bits 1-6 100000
//	bits 7-8 subtype
func DecodeClef(b byte) ClefValue { return ClefValue(b >> 6) }

// Characters in dynamics text with no printable rendition.
const (
	NullChar    = 0    // keep the character underneath
	InvalidChar = 0xff // code 0, 14 or 15
)

var textChars = [16]byte{
	InvalidChar, NullChar, ' ', '<', '>', '.', 'c', 'd', 'e', 'f', 'm',
	'p', 'r', 's', InvalidChar, InvalidChar,
}

// TextChar returns the character for the 4-bit dynamics text code c.
func TextChar(c byte) byte { return textChars[c&0xf] }

// A TextValue holds up to five characters of dynamics text.
type TextValue [5]byte

// DecodeText decodes dynamics text.
//
//	bits 1-4 1000
//	bits 5-24 five character codes, first to last
func DecodeText(b1, b2, b3 byte) TextValue {
	return TextValue{
		TextChar(b1 >> 4), TextChar(b2), TextChar(b2 >> 4),
		TextChar(b3), TextChar(b3 >> 4),
	}
}

// String returns t with null characters as "_" and invalid ones as "E".
func (t TextValue) String() string {
	b := make([]byte, len(t))
	for i, c := range t {
		switch c {
		case NullChar:
			c = '_'
		case InvalidChar:
			c = 'E'
		}
		b[i] = c
	}
	return string(b)
}

// A Group is a decoded byte group.  Only the field selected by Kind
// is meaningful.
type Group struct {
	Kind    Kind
	Note    NoteValue
	Time    TimeValue
	Key     KeyValue
	Barline BarlineValue
	Clef    ClefValue
	Text    TextValue
}

// DecodeGroup decodes the group b, whose length must be at least
// Classify(b[0]).Len().
func DecodeGroup(b []byte) Group {
	g := Group{Kind: Classify(b[0])}
	switch g.Kind {
	case Note:
		g.Note = DecodeNote(b[0], b[1])
	case Beamed:
		g.Note = DecodeBeamed(b[0], b[1], b[2])
	case Time:
		g.Time = DecodeTime(b[0])
	case Key:
		g.Key = DecodeKey(b[0], b[1], b[2], b[3])
	case Barline:
		g.Barline = DecodeBarline(b[0])
	case Text:
		g.Text = DecodeText(b[0], b[1], b[2])
	case Clef:
		g.Clef = DecodeClef(b[0])
	}
	return g
}

// String returns a short human-readable description of g.
func (g Group) String() string {
	switch g.Kind {
	case Note, Beamed:
		return g.Note.String()
	case Time:
		return "time " + strconv.Itoa(g.Time.Top) + "/" +
			strconv.Itoa(g.Time.Bottom)
	case Key:
		return "key " + g.Key.String()
	case Barline:
		return "barline " + g.Barline.String()
	case Text:
		return "text " + strconv.Quote(g.Text.String())
	case Clef:
		return g.Clef.String() + " clef"
	}
	return g.Kind.String()
}

func (k KeyValue) String() string {
	rs := k.Rows()
	if len(rs) == 0 {
		return "none"
	}
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = string([]byte{r.Letter(), k.Accidental(r).Char()})
	}
	return strings.Join(s, " ")
}

func (n NoteValue) String() string {
	var s []string
	if n.Dot {
		s = append(s, "dotted")
	}
	if n.Beamed {
		s = append(s, "beamed")
	}
	s = append(s, n.Duration.String())
	if n.IsRest() {
		s = append(s, "rest")
	} else {
		s = append(s, n.Pitch.String())
	}
	for _, v := range [...]string{
		n.Accidental.String(), n.Articulation.String(),
	} {
		if v != "" {
			s = append(s, v)
		}
	}
	if n.Tie {
		s = append(s, "tied")
	}
	if n.Beamed {
		dir := "up"
		if n.Down {
			dir = "down"
		}
		s[len(s)-1] += ","
		s = append(s, "stem", strconv.Itoa(n.Stem), dir+",", "beams",
			strconv.Itoa(n.Left)+"/"+strconv.Itoa(n.Right))
		if n.Narrow != 0 {
			s = append(s, "narrow", strconv.Itoa(n.Narrow))
		}
		if n.Tag != BeamTag {
			s = append(s, "bad tag")
		}
	}
	return strings.Join(s, " ")
}
