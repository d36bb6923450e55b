// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stave

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/unixdj/stave/coding"
)

// ErrNoTerminator is returned when the data ends without a zero byte.
var ErrNoTerminator = errors.New("stave: missing terminator")

// ByteError reports a byte that does not start a valid group: a byte
// matching no group kind, or dynamics text at the start of the data or
// right after another dynamics text.
type ByteError struct {
	Offset int  // offset of the byte in the data
	Byte   byte // byte value
}

func (e ByteError) Error() string {
	return fmt.Sprintf("stave: invalid byte 0b%08b at offset %d",
		e.Byte, e.Offset)
}

// TerminatorError reports a zero byte within a group.
type TerminatorError struct {
	Offset int // offset of the zero byte in the data
}

func (e TerminatorError) Error() string {
	return fmt.Sprintf("stave: unexpected terminator at offset %d", e.Offset)
}

// InternalError reports a malformed noteblock drawn for the group at
// Offset.
type InternalError struct {
	Offset int
	Reason string
}

func (e InternalError) Error() string {
	return fmt.Sprintf("stave: internal error at offset %d: %s",
		e.Offset, e.Reason)
}

// A Group is a decoded byte group together with its place in the data
// and in the music.
type Group struct {
	coding.Group
	Offset  int    // offset of the first byte in the data
	Bytes   []byte // encoded group
	Block   int    // index of the block drawn or written under
	Measure int    // number of barlines before the group

	// Malformed is set for a group drawn with an error marker.
	Malformed bool

	// Notes only.
	Tied  bool              // tied from the previous note
	Carry coding.Accidental // accidental in effect on the row in the measure
}

// A Sheet holds decoded music: a noteblock per group, except dynamics
// text, and the groups themselves.
type Sheet struct {
	Blocks []Block
	Groups []Group
}

// context carries the state between groups.
type context struct {
	prev    coding.Kind             // kind of the last group; Terminator at start
	tie     bool                    // last note tied forward; survives barlines
	measure int                     // barlines so far
	acc     [Rows]coding.Accidental // accidentals in the current measure
}

// Decode decodes data up to the terminating zero byte.  On error,
// Decode returns the groups decoded so far with the error, which is a
// ByteError, TerminatorError, InternalError or ErrNoTerminator.
// Malformed fields in structurally valid groups are not errors and are
// drawn as error markers instead.
func Decode(data []byte) (*Sheet, error) {
	s := new(Sheet)
	var c context
	for i := 0; i < len(data); {
		k := coding.Classify(data[i])
		switch {
		case k == coding.Terminator:
			return s, nil
		case k == coding.Invalid,
			k == coding.Text && (c.prev == coding.Terminator ||
				c.prev == coding.Text):
			return s, ByteError{i, data[i]}
		}
		n := k.Len()
		for j := i + 1; j < i+n; j++ {
			if j == len(data) {
				return s, ErrNoTerminator
			}
			if data[j] == 0 {
				return s, TerminatorError{j}
			}
		}
		g := Group{
			Group:  coding.DecodeGroup(data[i : i+n]),
			Offset: i,
			Bytes:  data[i : i+n : i+n],
		}
		if err := s.add(&c, g); err != nil {
			return s, err
		}
		i += n
	}
	return s, ErrNoTerminator
}

// add draws g and appends it to s.
func (s *Sheet) add(c *context, g Group) error {
	g.Measure = c.measure
	var b Block
	switch g.Kind {
	case coding.Note, coding.Beamed:
		n := &g.Note
		if !n.IsRest() {
			if n.Accidental != coding.NoAccidental {
				c.acc[n.Pitch] = n.Accidental
			}
			g.Carry = c.acc[n.Pitch]
			g.Tied = c.tie
		}
		b = noteBlock(*n, g.Tied)
		g.Malformed = !noteValid(*n)
		c.tie = n.Tie && !n.IsRest()
	case coding.Time:
		b = timeBlock(g.Time)
	case coding.Key:
		b = keyBlock(g.Key)
	case coding.Barline:
		b = barlineBlock(g.Barline)
		g.Malformed = g.Barline == coding.BadBarline
		if g.Barline != coding.BlankColumn {
			c.measure++
			c.acc = [Rows]coding.Accidental{}
		}
	case coding.Clef:
		b = clefBlock(g.Clef)
		g.Malformed = g.Clef == coding.BadClef
	case coding.Text:
		g.Block = len(s.Blocks) - 1
		last := &s.Blocks[g.Block]
		last.text(g.Text)
		g.Malformed = bytes.IndexByte(g.Text[:], coding.InvalidChar) >= 0
		if !last.valid() {
			return InternalError{g.Offset, "text row overflows block"}
		}
		s.Groups = append(s.Groups, g)
		c.prev = g.Kind
		return nil
	}
	if !b.valid() {
		return InternalError{g.Offset, "malformed " + g.Kind.String() +
			" block"}
	}
	g.Block = len(s.Blocks)
	s.Blocks = append(s.Blocks, b)
	s.Groups = append(s.Groups, g)
	c.prev = g.Kind
	return nil
}
