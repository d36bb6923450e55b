// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stave

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strings"
)

// ErrWidth is returned for a stave width too narrow for a noteblock.
var ErrWidth = errors.New("stave: width less than 5")

// MinWidth is the narrowest stave that fits every noteblock.
const MinWidth = MaxWidth

// A Stave is a run of noteblocks printed side by side.
type Stave []Block

// Width returns the number of characters in each row of s.
func (s Stave) Width() int {
	n := 0
	for i := range s {
		n += s[i].width
	}
	return n
}

// appendRow appends row r of s to b.
func (s Stave) appendRow(b []byte, r int) []byte {
	for i := range s {
		b = append(b, s[i].cells[r][:s[i].width]...)
	}
	return b
}

// Staves splits the blocks of s into staves no wider than width
// characters.  The break is decided once per stave, on its top row,
// and the same blocks make up every row of the stave.
func (s *Sheet) Staves(width int) ([]Stave, error) {
	if width < MinWidth {
		return nil, ErrWidth
	}
	var ss []Stave
	for bl := s.Blocks; len(bl) != 0; {
		n, w := 0, 0
		for n < len(bl) && w+len(bl[n].Row(TopRow)) <= width {
			w += bl[n].width
			n++
		}
		ss = append(ss, Stave(bl[:n:n]))
		bl = bl[n:]
	}
	return ss, nil
}

// Encode writes the music in s to w in staves no wider than width
// characters, separated by empty lines.
func (s *Sheet) Encode(w io.Writer, width int) error {
	ss, err := s.Staves(width)
	if err != nil {
		return err
	}
	return EncodeStaves(w, ss)
}

// EncodeStaves writes ss to w, separated by empty lines.
func EncodeStaves(w io.Writer, ss []Stave) error {
	b := bufio.NewWriter(w)
	var row []byte
	for i, st := range ss {
		if i != 0 {
			if err := b.WriteByte('\n'); err != nil {
				return err
			}
		}
		for r := TopRow; r >= 0; r-- {
			row = append(st.appendRow(row[:0], r), '\n')
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// Render returns the music in s as text in staves no wider than width
// characters.
func (s *Sheet) Render(width int) (string, error) {
	var b strings.Builder
	if err := s.Encode(&b, width); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String returns the music in s on a single stave.
func (s *Sheet) String() string {
	str, _ := s.Render(math.MaxInt)
	return str
}
