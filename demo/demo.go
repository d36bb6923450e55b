// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo holds example music encodings: a short song and a
// detailed example of each group type.
package demo // import "github.com/unixdj/stave/demo"

import "slices"

// An Example is a named encoding with the width it is best shown at.
type Example struct {
	Name  string
	Width int
	Data  []byte
}

// DetailWidth is the width of the detailed examples.
const DetailWidth = 80

// Song is a short song in E major illustrating most of the notation.
var Song = Example{"song", 85, []byte{
	0b01010100,                                     // blank column
	0b00100000,                                     // treble clef
	0b00000111, 0b11000000, 0b00000111, 0b11110110, // E major
	0b00111010,                                     // 4/4

	0b00000001, 0b01010000,             // eighth rest
	0b00000101, 0b00110110, 0b10000001, // low G, tall stem, beam right
	0b00101000, 0b10111010, 0b00100010, // " mp  "
	0b00000101, 0b10100111, 0b10000101, // dotted low A, beams both sides
	0b00000101, 0b10110110, 0b10000101, // dotted low G, tall stem, beams both sides
	0b00000101, 0b00100111, 0b10000100, // low A, beam left
	0b00000001, 0b01000100,             // quarter low E
	0b00000100,                         // single barline

	0b00000001, 0b01010000,             // eighth rest
	0b00000101, 0b00110110, 0b10000001, // low G, tall stem, beam right
	0b00000101, 0b10100111, 0b10000101, // dotted low A, beams both sides
	0b00000101, 0b10110110, 0b10000101, // dotted low G, tall stem, beams both sides
	0b00000101, 0b00100111, 0b10000100, // low A, beam left
	0b00000001, 0b01000100,             // quarter low E
	0b00000100,                         // single barline

	0b00000001, 0b01010000,             // eighth rest
	0b00000101, 0b00110110, 0b10000001, // low G, tall stem, beam right
	0b00000101, 0b10100111, 0b10000101, // dotted low A, beams both sides
	0b00000101, 0b10110110, 0b10000101, // dotted low G, tall stem, beams both sides
	0b00000101, 0b00100111, 0b10000100, // low A, beam left
	0b00000001, 0b01000100,             // quarter low E
	0b00000100,                         // single barline

	0b00000001, 0b01010000,             // eighth rest
	0b00000101, 0b00110110, 0b10000001, // low G, tall stem, beam right
	0b00101000, 0b00110010, 0b00110011, // "  <<<"
	0b00000101, 0b10100111, 0b10000101, // dotted low A, beams both sides
	0b00111000, 0b00110011, 0b00110011, // "<<<<<"
	0b00000101, 0b10110110, 0b10000101, // dotted low G, tall stem, beams both sides
	0b00111000, 0b00110011, 0b00110011, // "<<<<<"
	0b00000101, 0b00100111, 0b10000100, // low A, beam left
	0b00111000, 0b00110011, 0b00110011, // "<<<<<"
	0b00000001, 0b01010100,             // eighth low E
	0b00111000, 0b00110011, 0b00110011, // "<<<<<"
	0b00100101, 0b01011001, 0b10001010, // staccato high C, stem down, two beams both sides
	0b00111000, 0b10010010, 0b00100010, // "< f  "
	0b10100101, 0b01011001, 0b10001000, // tied staccato high C, stem down, two beams left
	0b10000100,                         // left repeat slim
	0b00000001, 0b00111001,             // half high C
	0,
}}

// Detail holds the detailed examples.
var Detail = []Example{
	{"clef", DetailWidth, []byte{
		0b00100000, // treble clef
		0b01010100, // blank column
		0b01100000, // bass clef
		0b01010100, // blank column
		0b10100000, // percussion clef
		0,
	}},
	{"key", DetailWidth, []byte{
		0b00000011, 0b11000001, 0b00000111, 0b11000000, // F major
		0b00000100,
		0b00000011, 0b11001001, 0b00000111, 0b11000000, // B flat major
		0b00000100,
		0b10000011, 0b11001001, 0b00000111, 0b11000000, // E flat major
		0b00000100,
		0b10000011, 0b11001101, 0b00000111, 0b11000000, // A flat major
		0b00000100,
		0b11000011, 0b11001101, 0b00000111, 0b11000000, // D flat major
		0b00000100,
		0b11000011, 0b11001111, 0b00000111, 0b11000000, // G flat major
		0b00000100,
		0b11100011, 0b11001111, 0b00000111, 0b11000000, // C flat major
		0b00000100,
		0b11100011, 0b11001111, 0b11100111, 0b11000110, // B flat major after C flat major
		0b00000100,
		0b00000011, 0b11001001, 0b00000111, 0b11001001, // C major after B flat major
		0b00000100,
		0b00000011, 0b11000000, 0b00000111, 0b11000000, // C major, flats order
		0b00000111, 0b11000000, 0b00000111, 0b11010000, // G major
		0b00000100,
		0b00000111, 0b11000000, 0b00000111, 0b11010010, // D major
		0b00000100,
		0b00000111, 0b11000000, 0b00000111, 0b11110010, // A major
		0b00000100,
		0b00000111, 0b11000000, 0b00000111, 0b11110110, // E major
		0b00000100,
		0b00000111, 0b11000000, 0b10000111, 0b11110110, // B major
		0b00000100,
		0b00000111, 0b11000000, 0b10000111, 0b11111110, // F sharp major
		0b00000100,
		0b00000111, 0b11000000, 0b10000111, 0b11111111, // C sharp major
		0b00000100,
		0b10000111, 0b11101101, 0b10000111, 0b11111111, // D major after C sharp major
		0b00000100,
		0b00000111, 0b11010010, 0b00000111, 0b11010010, // C major after D major
		0b00000100,
		0b00000111, 0b11000000, 0b00000111, 0b11000000, // C major, sharps order
		0b00000100,
		0b10000011, 0b00000001, 0b10000010, 0b11000010, // A natural, B flat, C sharp; flats order
		0b00000100,
		0b10000111, 0b00000001, 0b10000010, 0b11000010, // the same, sharps order
		0b00000100,
		0b11111011, 0b11111111, 0b00000111, 0b11000000, // all flats
		0b00000100,
		0b00000111, 0b11000000, 0b11111111, 0b11111111, // all sharps
		0b00000100,
		0b11111011, 0b11111111, 0b11111111, 0b11111111, // all naturals
		0,
	}},
	{"time", DetailWidth, []byte{
		0b00000010, // 1/1
		0b00010110, // 2/2
		0b00101010, // 3/4
		0b00111110, // 4/8
		0b01000010, // 5/1
		0b01010110, // 6/2
		0b01101010, // 7/4
		0b01111110, // 8/8
		0b10000010, // 9/1
		0b10010110, // 10/2
		0b10101010, // 11/4
		0b10111110, // 12/8
		0b11000010, // 13/1
		0b11010110, // 14/2
		0b11101010, // 15/4
		0b11111110, // 16/8
		0,
	}},
	{"note", DetailWidth, []byte{
		0b00100000,             // treble clef
		0b00000001, 0b00010101, // breve low F
		0b00011001, 0b00100111, // whole low A sharp
		0b01001001, 0b00111000, // half middle B flat, accent
		0b01110001, 0b11001010, // dotted quarter high D natural, tenuto
		0b00100001, 0b01011100, // eighth high F, staccato
		0b00000001, 0b01101110, // sixteenth high A
		0b00000100,             // single barline
		0b00000001, 0b00010000, // breve rest
		0b00000001, 0b00100000, // whole rest
		0b00000001, 0b00110000, // half rest
		0b00000001, 0b01000000, // quarter rest
		0b00000001, 0b11010000, // dotted eighth rest
		0b00000001, 0b01100000, // sixteenth rest
		0b01110100,             // double slim barline
		0,
	}},
	{"text", DetailWidth, []byte{
		0b01000100,                         // both repeats
		0b01101000, 0b10000111, 0b00011001, // "cdef"
		0b01000100,                         // both repeats
		0b10101000, 0b11001011, 0b00011101, // "mprs"
		0b01000100,                         // both repeats
		0b00101000, 0b01000011, 0b00010101, // " <>."
		0,
	}},
	{"barline", DetailWidth, []byte{
		0b00100000, // treble clef
		0b00000100, // single wide
		0b00100000,
		0b01100100, // single slim
		0b00100000,
		0b00010100, // double wide
		0b00100000,
		0b01110100, // double slim
		0b00100000,
		0b00100100, // left repeat wide
		0b00100000,
		0b10000100, // left repeat slim
		0b00100000,
		0b00110100, // right repeat wide
		0b00100000,
		0b10010100, // right repeat slim
		0b00100000,
		0b01000100, // both repeats
		0b00100000,
		0b01010100, // blank column
		0b00100000,
		0,
	}},
}

// Names returns the names of the examples, the song first.
func Names() []string {
	names := []string{Song.Name}
	for _, e := range Detail {
		names = append(names, e.Name)
	}
	return names
}

// Lookup returns the example called name.  The empty name stands for
// the song.
func Lookup(name string) (Example, bool) {
	if name == "" || name == Song.Name {
		return Song, true
	}
	i := slices.IndexFunc(Detail, func(e Example) bool {
		return e.Name == name
	})
	if i < 0 {
		return Example{}, false
	}
	return Detail[i], true
}
