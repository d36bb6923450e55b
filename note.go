// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stave

import "github.com/unixdj/stave/coding"

// noteStaff returns the staff lines for a note on row p, with a ledger
// line below or above the staff where needed.
func noteStaff(p coding.Row) uint16 {
	switch {
	case p == coding.TextRow:
	case p <= coding.LowC:
		return staff | 1<<coding.LowC
	case p >= coding.HighA:
		return staff | 1<<coding.HighA
	}
	return staff
}

// noteBlock draws a note or rest.  tied is set if the previous note
// was tied to this one.
func noteBlock(n coding.NoteValue, tied bool) Block {
	b := newBlock(MaxWidth, noteStaff(n.Pitch))
	if n.IsRest() {
		b.rest(n)
		return b
	}
	p := int(n.Pitch)
	if n.Beamed {
		if r, ok := checkBeams(n); !ok {
			b.markError(r)
			return b
		}
	} else if !n.Duration.Valid() {
		b.markError(p)
		return b
	}
	dir := n.Orientation()
	b.put(p-dir, 2, n.Articulation.Char())
	b.head(n, tied)
	if n.Stem == 0 {
		return b
	}
	top := p + dir*n.Stem
	col := 3
	if n.Down {
		col = 1
	}
	for r := top; r != p; r -= dir {
		b.put(r, col, '|')
	}
	if n.Beamed {
		b.beams(n, top)
	} else if n.Flags > 0 {
		col, c := 4, byte('\\')
		if n.Down {
			col, c = 2, '/'
		}
		for i := 0; i < n.Flags; i++ {
			b.put(top-i*dir, col, c)
		}
	}
	return b
}

// head draws the notehead with the accidental or tie from the previous
// note before it and the dot or tie to the next note after it.
func (b *Block) head(n coding.NoteValue, tied bool) {
	p := int(n.Pitch)
	pre := n.Accidental.Char()
	if tied {
		pre = '_'
	}
	var h string
	switch d := n.Duration; {
	case d.Stemmed():
		fill := "_"
		if d.Filled() {
			fill = "@"
		}
		if n.Down {
			h = "|" + fill + ")"
		} else {
			h = "(" + fill + "|"
		}
	case d == coding.Whole:
		h = "(_)"
	default:
		h = "|O|"
	}
	var post byte
	switch {
	case n.Dot:
		post = '.'
	case n.Tie:
		post = '_'
	}
	b.put(p, 0, pre)
	b.put(p, 1, h[0])
	b.put(p, 2, h[1])
	b.put(p, 3, h[2])
	b.put(p, 4, post)
}

// noteValid reports whether n is drawn without an error marker.
func noteValid(n coding.NoteValue) bool {
	if n.Beamed {
		_, ok := checkBeams(n)
		return ok
	}
	return n.Duration.Valid()
}

// checkBeams returns whether the stem and beams of a beamed note fit
// in a noteblock and, if not, the row to mark as erroneous.
func checkBeams(n coding.NoteValue) (int, bool) {
	p := int(n.Pitch)
	if p == 0 {
		return int(coding.MidB), false
	}
	if n.Tag != coding.BeamTag || n.Narrow == 3 || n.Narrow > n.WideSide() {
		return p, false
	}
	dir := n.Orientation()
	top := p + dir*n.Stem
	tip, inner := top, top
	if k := n.Beams(); k > 0 {
		if n.Down {
			inner = top + k - 1
		} else {
			tip, inner = top+1, top+2-k
		}
		if (inner-p)*dir <= 0 {
			return p, false
		}
	}
	if tip < 0 || tip >= Rows {
		return p, false
	}
	return p, true
}

// beams draws the beams of a note whose stem ends on row top.  Beam k
// counts from the tip of the stem; the innermost n.Narrow beams on the
// three-column side are two columns wide.
//
// Stem up with two beams left, one of them narrow, and one right:
//
//	_____
//	 __|
//	   |
//	 (@|
//
// Stem down with one beam left and two right, one of them narrow:
//
//	 |@)
//	 |
//	 |__
//	_|___
func (b *Block) beams(n coding.NoteValue, top int) {
	narrow := n.WideSide() - n.Narrow
	if n.Down {
		for k := 1; k <= n.Left; k++ {
			b.put(top+k-1, 0, '_')
		}
		for k := 1; k <= n.Right; k++ {
			to := 4
			if k > narrow {
				to = 3
			}
			b.fill(top+k-1, 2, to, '_')
		}
		return
	}
	for k := 1; k <= n.Left; k++ {
		from := 0
		if k > narrow {
			from = 1
		}
		b.fill(top+2-k, from, 2, '_')
	}
	if n.Left > 0 && n.Right > 0 {
		b.put(top+1, 3, '_')
	}
	for k := 1; k <= n.Right; k++ {
		b.put(top+2-k, 4, '_')
	}
}

// rest draws a rest.
func (b *Block) rest(n coding.NoteValue) {
	var dot byte
	if n.Dot {
		dot = '.'
	}
	switch n.Duration {
	case coding.Breve:
		b.overlay(10, " ###")
		b.overlay(9, " ###")
		b.overlay(8, " ###")
		b.put(9, 4, dot)
	case coding.Whole:
		b.overlay(10, " ###")
		b.overlay(9, " ###")
		b.put(9, 4, dot)
	case coding.Half:
		b.overlay(9, " ###")
		b.overlay(8, " ###")
		b.put(9, 4, dot)
	case coding.Quarter:
		b.put(10, 2, '\\')
		b.put(9, 2, '/')
		b.put(8, 2, '\\')
		b.put(7, 2, 'C')
		b.put(9, 3, dot)
	case coding.Eighth:
		b.put(9, 3, 'O')
		b.put(8, 2, '/')
		b.put(9, 4, dot)
	case coding.Sixteenth:
		b.put(9, 3, 'O')
		b.put(8, 2, 'O')
		b.put(7, 1, '/')
		b.put(9, 4, dot)
	default:
		b.markError(int(coding.MidB))
	}
}
