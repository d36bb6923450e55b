// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unixdj/stave"
	"github.com/unixdj/stave/demo"
	"github.com/unixdj/stave/midi"
)

// maxFileSize is the largest encoded file read.
const maxFileSize = 99999

// describe formats err for the user.
func describe(err error) string {
	return strings.TrimPrefix(err.Error(), "stave: ")
}

// readFile reads an encoded file.
func readFile(fn string) ([]byte, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	switch {
	case err != nil:
		return nil, errors.Wrapf(err, "read %s", fn)
	case len(b) == 0:
		return nil, errors.Errorf("%s: file is empty", fn)
	case len(b) > maxFileSize:
		return nil, errors.Errorf("%s: file is longer than %d bytes",
			fn, maxFileSize)
	}
	return b, nil
}

// decode decodes data, logging statistics.
func decode(name string, data []byte) (*stave.Sheet, error) {
	sheet, err := stave.Decode(data)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"bytes":  len(data),
		"groups": len(sheet.Groups),
		"blocks": len(sheet.Blocks),
	}).Debugf("decoded %s", name)
	return sheet, nil
}

// show writes the music in sheet to the output.
func show(sheet *stave.Sheet, width int) error {
	ss, err := sheet.Staves(width)
	if err != nil {
		return err
	}
	logrus.WithField("staves", len(ss)).Debug("paginated")
	return stave.EncodeStaves(g.out, ss)
}

func parseWidth(s string) (int, error) {
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%q: invalid width", s)
	}
	if w < stave.MinWidth || w > maxWidth {
		return 0, errors.Errorf("width %d out of range %d-%d",
			w, stave.MinWidth, maxWidth)
	}
	return w, nil
}

func cmdRead(args []string) error {
	width := defaultWidth()
	if len(args) > 1 {
		var err error
		if width, err = parseWidth(args[1]); err != nil {
			return err
		}
	}
	data, err := readFile(args[0])
	if err != nil {
		return err
	}
	sheet, err := decode(args[0], data)
	if err != nil {
		return err
	}
	return show(sheet, width)
}

func lookup(args []string) (demo.Example, error) {
	var name string
	if len(args) != 0 {
		name = args[0]
	}
	e, ok := demo.Lookup(name)
	if !ok {
		return e, errors.Errorf("%q: unknown example; try one of: %s",
			name, strings.Join(demo.Names(), ", "))
	}
	return e, nil
}

func cmdExample(args []string) error {
	e, err := lookup(args)
	if err != nil {
		return err
	}
	var withBytes bool
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "b", "bytes", "1", "true":
			withBytes = true
		}
	}
	sheet, err := decode(e.Name, e.Data)
	if err != nil {
		return err
	}
	if err := show(sheet, e.Width); err != nil {
		return err
	}
	if withBytes {
		if _, err := io.WriteString(g.out, "\n"); err != nil {
			return err
		}
		return dump(g.out, e.Data)
	}
	return nil
}

// dump writes data in binary, eight bytes per line, with a space
// between the halves of each byte.
func dump(w io.Writer, data []byte) error {
	var b []byte
	for i, c := range data {
		if i&7 != 0 {
			b = append(b, "  "...)
		}
		b = fmt.Appendf(b, "%04b %04b", c>>4, c&15)
		if i&7 == 7 || i == len(data)-1 {
			b = append(b, '\n')
		}
	}
	_, err := w.Write(b)
	return err
}

func cmdEncodingInfo([]string) error {
	_, err := io.WriteString(g.out, encodingInfo)
	return err
}

func cmdPerf(args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Errorf("%q: invalid count", args[0])
	}
	if n < 10 {
		return errors.Errorf("count %d less than 10", n)
	}
	e, err := lookup(args[1:])
	if err != nil {
		return err
	}
	start := time.Now()
	for i := 1; i <= n; i++ {
		sheet, err := stave.Decode(e.Data)
		if err != nil {
			return err
		}
		if _, err := sheet.Render(e.Width); err != nil {
			return err
		}
		if i*10/n != (i-1)*10/n {
			logrus.WithField("done", i).Infof("%d%%", i*10/n*10)
		}
	}
	_, err = fmt.Fprintf(g.out, "Example %s drawn %d times in %v\n",
		e.Name, n, time.Since(start).Round(time.Millisecond))
	return err
}

func cmdInspect(args []string) error {
	data, err := readFile(args[0])
	if err != nil {
		return err
	}
	sheet, err := stave.Decode(data)
	for _, gr := range sheet.Groups {
		bs := make([]string, len(gr.Bytes))
		for i, c := range gr.Bytes {
			bs[i] = fmt.Sprintf("%08b", c)
		}
		mark := ' '
		if gr.Malformed {
			mark = '!'
		}
		if _, err := fmt.Fprintf(g.out, "%5d  %-35s  %-10s %3d %c %s\n",
			gr.Offset, strings.Join(bs, " "), gr.Kind, gr.Measure,
			mark, gr.Group); err != nil {
			return err
		}
	}
	return err
}

func cmdMIDI(args []string) error {
	data, err := readFile(args[0])
	if err != nil {
		return err
	}
	sheet, err := decode(args[0], data)
	if err != nil {
		return err
	}
	f, err := os.Create(args[1])
	if err != nil {
		return errors.Wrap(err, "midi")
	}
	err = midi.Write(f, sheet.Groups, midi.Options{
		Tempo:    g.tempo,
		Velocity: g.velocity,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "write %s", args[1])
}
