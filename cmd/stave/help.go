// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

const encodingInfo = `FILE ENCODING

A file is a sequence of byte groups of 1 to 4 bytes ended by a zero
byte.  Most groups draw a noteblock: a rectangle 16 characters high and
1 to 5 wide holding a clef, note, barline or other element of music
notation.  Noteblocks are laid out left to right and wrapped into
staves.  Dynamics text modifies the bottom row of the previous
noteblock instead of drawing one.

An "E" or "ERROR" in the output marks a malformed field.

Bits are counted from the least significant bit of each byte, starting
at 1.  In groups of several bytes, bits 9-16 are in the second byte,
17-24 in the third and so on.  Rows count from 0 (dynamics text) and 1
(low B, below the staff) to 8 (middle B) and 15 (high B); pitch names
assume treble clef.

GROUP TYPES

Terminator (1 byte)
  bits 1-8   00000000

Note or rest (2 bytes)
  bits 1-3   001
  bits 4-5   accidental: none, flat (b), natural (~), sharp (#)
  bits 6-7   articulation: none, staccato (.), accent (>), tenuto (=)
  bit  8     tied to the next note
  bits 9-12  row of the notehead, 0 for a rest
  bits 13-15 duration: 1 breve, 2 whole, 3 half, 4 quarter,
             5 eighth, 6 sixteenth; 0 and 7 are invalid
  bit  16    dotted

Beamed note (3 bytes)
  bits 1-8   as for a note, with bits 1-3 101
  bits 9-12  row of the notehead, 1-15
  bits 13-14 stem length - 1, in rows
  bit  15    stem down
  bit  16    dotted
  bits 17-18 beams right of the stem, 0-3
  bits 19-20 beams left of the stem, 0-3
  bits 21-22 beams nearest the notehead drawn two columns wide on
             the side of the stem that is three columns wide
  bits 23-24 always 10
  The duration follows from the beam count: eighth for one beam or
  none, sixteenth for two, thirty-second for three.

Time signature (1 byte)
  bits 1-2   10
  bits 3-4   bottom number: 1, 2, 4 or 8
  bits 5-8   top number - 1

Key signature (4 bytes)
  bits 1-2   11
  bit  3     order: flats (0) or sharps (1)
  bits 4-14  flats, low D (bit 4) to high G (bit 14)
  bits 20-30 sharps, low D (bit 20) to high G (bit 30)
  A row in both is a natural.  Set some of the remaining bits so that
  no byte is zero.

Barline (1 byte)
  bits 1-4   0100
  bits 5-8   0 single, 1 double, 2 left repeat, 3 right repeat,
             4 both repeats, 5 blank column, 6 single slim,
             7 double slim, 8 left repeat slim, 9 right repeat slim;
             10-15 are invalid

Dynamics text (3 bytes)
  bits 1-4   1000
  bits 5-24  five characters of 4 bits each, drawn under the previous
             noteblock: 1 keep, 2 space, 3 <, 4 >, 5 ., 6 c, 7 d,
             8 e, 9 f, 10 m, 11 p, 12 r, 13 s; 0, 14 and 15 are
             invalid
  Not allowed first or right after another dynamics text.

Clef (1 byte)
  bits 1-6   100000
  bits 7-8   treble (0), bass (1), percussion (2); 3 is invalid
`
