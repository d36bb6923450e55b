// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var charsetNames = []string{"ascii", "latin1", "cp437", "ebcdic"}

// charsets maps output character set names to encodings.  ASCII needs
// no conversion.
var charsets = map[string]encoding.Encoding{
	"latin1": charmap.ISO8859_1,
	"cp437":  charmap.CodePage437,
	"ebcdic": charmap.CodePage037,
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// newOutput returns a writer converting text to charset on w.  Close
// flushes it without closing w.
func newOutput(w io.Writer, charset string) io.WriteCloser {
	e, ok := charsets[charset]
	if !ok {
		return nopCloser{w}
	}
	return transform.NewWriter(w, e.NewEncoder())
}
