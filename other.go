// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stave

import (
	"strconv"

	"github.com/unixdj/stave/coding"
)

// timeBlock draws a time signature, three columns wide for a one-digit
// top number and four for two digits.
func timeBlock(t coding.TimeValue) Block {
	top, bot := strconv.Itoa(t.Top), strconv.Itoa(t.Bottom)
	b := newBlock(len(top)+2, staff)
	b.draw(int(coding.HighC), " "+top+" ")
	b.draw(int(coding.LowA), "  "[:len(top)]+bot+" ")
	return b
}

// keyBlock draws a key signature, placing each accidental in the next
// column and wrapping around after the last.
func keyBlock(k coding.KeyValue) Block {
	b := newBlock(MaxWidth, staff)
	for i, r := range k.Rows() {
		b.put(int(r), i%MaxWidth, k.Accidental(r).Char())
	}
	return b
}

// barlines holds the width of each barline subtype and its rows: the
// rows beside middle B, the outer staff lines and the rest.  Spaces
// leave the staff showing.
var barlines = [...]struct {
	width            int
	beside, edge, in string
}{
	coding.SingleWide:      {3, " | ", " + ", " | "},
	coding.DoubleWide:      {4, " || ", " ++ ", " || "},
	coding.LeftRepeatWide:  {5, " 0|| ", "  ++ ", "  || "},
	coding.RightRepeatWide: {5, " ||0 ", " ++  ", " ||  "},
	coding.BothRepeats:     {4, "0||0", " ++ ", " || "},
	coding.BlankColumn:     {1, "", "", ""},
	coding.SingleSlim:      {1, "|", "+", "|"},
	coding.DoubleSlim:      {2, "||", "++", "||"},
	coding.LeftRepeatSlim:  {3, "0||", " ++", " ||"},
	coding.RightRepeatSlim: {3, "||0", "++ ", "|| "},
	coding.BadBarline:      {5, "", "", ""},
}

// barlineBlock draws a barline on the five staff lines and the spaces
// between them.
func barlineBlock(v coding.BarlineValue) Block {
	bl := &barlines[v]
	b := newBlock(bl.width, staff)
	for r := int(coding.LowE); r <= int(coding.HighF); r++ {
		switch {
		case v == coding.BadBarline:
			b.markError(r)
		case r == int(coding.LowA) || r == int(coding.HighC):
			b.overlay(r, bl.beside)
		case r == int(coding.LowE) || r == int(coding.HighF):
			b.overlay(r, bl.edge)
		default:
			b.overlay(r, bl.in)
		}
	}
	return b
}

// clefs holds the clef glyphs, top row first.
var clefs = [...][Rows]string{
	coding.Treble: {
		"     ",
		"   _ ",
		"  / \\",
		"--|-/",
		"  |/ ",
		"--|--",
		" /|  ",
		"/-|_-",
		"|/| \\",
		"|\\|-|",
		"\\_|_/",
		"--|--",
		"O_/  ",
		"     ",
		"     ",
		"     ",
	},
	coding.Bass: {
		"     ",
		"     ",
		"     ",
		"-__--",
		"/  \\0",
		"O--|-",
		"   /0",
		"--/--",
		" /   ",
		"/----",
		"     ",
		"-----",
		"     ",
		"     ",
		"     ",
		"     ",
	},
	coding.Percussion: {
		"     ",
		"     ",
		"     ",
		"-----",
		"     ",
		"-----",
		" # # ",
		"-#-#-",
		" # # ",
		"-----",
		"     ",
		"-----",
		"     ",
		"     ",
		"     ",
		"     ",
	},
	coding.BadClef: {
		"ERROR",
		"E  O ",
		" R  R",
		"  R  ",
		"E  O ",
		" R  R",
		"  R  ",
		"E  O ",
		" R  R",
		"  R  ",
		"E  O ",
		" R  R",
		"  R  ",
		"E  O ",
		" R  R",
		"ERROR",
	},
}

// clefBlock copies a clef glyph.
func clefBlock(v coding.ClefValue) Block {
	b := Block{width: MaxWidth}
	for i, s := range &clefs[v&3] {
		copy(b.cells[TopRow-i][:], s)
	}
	return b
}

// text writes dynamics text on the bottom row of b.  Null characters
// keep the cell, invalid ones are drawn as "E", and characters beyond
// the width of b are cleared.
func (b *Block) text(t coding.TextValue) {
	for i, c := range t {
		switch {
		case i >= b.width:
			b.cells[coding.TextRow][i] = 0
		case c == coding.InvalidChar:
			b.put(0, i, 'E')
		default:
			b.put(0, i, c)
		}
	}
}
