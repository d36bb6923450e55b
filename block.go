// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stave renders sheet music encoded as byte groups into text.

An encoded buffer is a sequence of byte groups of one to four bytes,
ended by a zero byte.  Each group except dynamics text is drawn as a
noteblock, a character grid 16 rows tall and one to five columns wide
holding a staff with a clef, key or time signature, barline, note or
rest.  Dynamics text is written under the preceding noteblock.
Noteblocks are laid out left to right and wrapped into staves no wider
than a given number of characters:

	sheet, err := stave.Decode(data)
	if err != nil {
		return err
	}
	return sheet.Encode(os.Stdout, 80)

The byte group grammar is implemented by package coding.
*/
package stave // import "github.com/unixdj/stave"

import "github.com/unixdj/stave/coding"

// Noteblock dimensions.
const (
	Rows     = coding.Rows // rows in a noteblock
	MaxWidth = 5           // maximum noteblock width
	TopRow   = Rows - 1    // row printed first
)

// staff has bit r set for each row r drawn as a staff line.
const staff = 1<<coding.LowE | 1<<coding.LowG | 1<<coding.MidB |
	1<<coding.HighD | 1<<coding.HighF

// A Block is a noteblock.  Row 0 is the bottom row, reserved for
// dynamics text.  Cells at or beyond the block's width are zero.
type Block struct {
	width int
	cells [Rows][MaxWidth]byte
}

// newBlock returns a block of the given width with staff lines drawn
// on the rows set in lines and spaces elsewhere.
func newBlock(width int, lines uint16) Block {
	b := Block{width: width}
	for r := range b.cells {
		c := byte(' ')
		if lines>>r&1 != 0 {
			c = '-'
		}
		for i := 0; i < width; i++ {
			b.cells[r][i] = c
		}
	}
	return b
}

// Width returns the number of columns in b.
func (b *Block) Width() int { return b.width }

// Row returns row r of b.
func (b *Block) Row(r int) string { return string(b.cells[r][:b.width]) }

// At returns the character at row r, column c of b, and whether the
// cell exists.
func (b *Block) At(r, c int) (byte, bool) {
	if r < 0 || r >= Rows || c < 0 || c >= b.width {
		return 0, false
	}
	return b.cells[r][c], true
}

// String returns the rows of b from top to bottom, each followed by a
// newline.
func (b *Block) String() string {
	s := make([]byte, 0, Rows*(b.width+1))
	for r := TopRow; r >= 0; r-- {
		s = append(append(s, b.cells[r][:b.width]...), '\n')
	}
	return string(s)
}

// put draws c at row r, column col.  Zero characters and cells outside
// the block are skipped.
func (b *Block) put(r, col int, c byte) {
	if c != 0 && 0 <= r && r < Rows && 0 <= col && col < b.width {
		b.cells[r][col] = c
	}
}

// fill draws c in columns from to to inclusive of row r.
func (b *Block) fill(r, from, to int, c byte) {
	for i := from; i <= to; i++ {
		b.put(r, i, c)
	}
}

// draw writes s starting at column 0 of row r.
func (b *Block) draw(r int, s string) {
	for i := 0; i < len(s); i++ {
		b.put(r, i, s[i])
	}
}

// overlay writes s starting at column 0 of row r, leaving the cells
// under spaces untouched.
func (b *Block) overlay(r int, s string) {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			b.put(r, i, s[i])
		}
	}
}

// markError draws an error marker on row r.
func (b *Block) markError(r int) { b.draw(r, "ERROR") }

// valid reports whether b has a valid width, every cell within the
// width is set and every cell beyond it is clear.
func (b *Block) valid() bool {
	if b.width < 1 || b.width > MaxWidth {
		return false
	}
	for r := range b.cells {
		for i, c := range b.cells[r] {
			if (c == 0) != (i >= b.width) {
				return false
			}
		}
	}
	return true
}
