// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Stave prints sheet music drawn with ASCII characters from an encoded
// file.
package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/sirupsen/logrus"

	"github.com/unixdj/stave"
)

var g = struct {
	width    int       // maximum stave width, 0 for unset
	charset  string    // output character set
	tempo    float64   // MIDI tempo
	velocity uint8     // MIDI note velocity
	debug    bool      // debug logging
	config   string    // configuration file
	out      io.Writer // standard output in the output character set
	tty      bool      // standard output is a terminal
}{
	charset: "ascii",
}

var commands = []struct {
	name, args string
	min, max   int
	run        func([]string) error // nil for help
	help       string
}{
	{"read", "path [width]", 1, 2, cmdRead,
		"read an encoded file and print the music"},
	{"example", "[type] [withBytes]", 0, 2, cmdExample,
		"print an example: song, clef, key, time, note, text or " +
			"barline; with a second argument (b, bytes, 1, true), " +
			"print the encoding too"},
	{"encoding-info", "", 0, 0, cmdEncodingInfo,
		"print the file encoding reference"},
	{"perf", "count [type]", 1, 2, cmdPerf,
		"decode and draw an example count (at least 10) times"},
	{"inspect", "path", 1, 1, cmdInspect,
		"list the byte groups of an encoded file"},
	{"midi", "path out.mid", 2, 2, cmdMIDI,
		"export the notes of an encoded file as a Standard MIDI File"},
	{"help", "", 0, 0, nil, "show this help"},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "ASCII sheet music printer\nUsage: ", prog, " ",
		cl.UsageLine(), " command [args]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s %s\n", c.name, c.args)
		fmt.Fprintf(w, "        %s\n", c.help)
	}
	fmt.Fprint(w, `
Width defaults to the terminal width if standard output is a terminal,
otherwise the music is printed on a single stave.  Widths range from
`, stave.MinWidth, ` to `, maxWidth, `.

Options:
`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`stave version 0.3.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("command [args]")
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.debug, 'd', "log decoding statistics")
	getopt.Flag(&g.config, 'c', `configuration file `+
		`[$XDG_CONFIG_HOME/stave/config.yaml]`, "file")
	width := getopt.Unsigned('w', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: stave.MinWidth, Max: maxWidth},
		"maximum stave width", "width")
	cs := getopt.Enum('C', charsetNames, "",
		"output character set, one of: "+
			strings.Join(charsetNames, ", ")+" [ascii]", "charset")
	tempo := getopt.Unsigned('t', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 999},
		"MIDI tempo in beats per minute [120]", "bpm")

	getopt.Parse()

	c, err := loadConfig(g.config, getopt.IsSet('c'))
	if err != nil {
		logrus.Fatalln(err)
	}
	c.apply()
	if getopt.IsSet('w') {
		g.width = int(*width)
	}
	if getopt.IsSet('C') {
		g.charset = *cs
	}
	if getopt.IsSet('t') {
		g.tempo = float64(*tempo)
	}
	g.tty = isatty.IsTerminal(uintptr(syscall.Stdout))
}

// defaultWidth returns the width to print at when none is given on
// the command line.
func defaultWidth() int {
	switch {
	case g.width != 0:
		return g.width
	case g.tty:
		if w := termWidth(uintptr(syscall.Stdout)); w >= stave.MinWidth {
			return min(w, maxWidth)
		}
	}
	return math.MaxInt
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	parseFlags()
	if g.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := getopt.Args()
	if len(args) == 0 {
		usage()
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		args = args[1:]
		if c.run == nil {
			help()
		}
		if len(args) < c.min || len(args) > c.max {
			fmt.Fprintf(os.Stderr, "usage: %s %s %s\n",
				getopt.CommandLine.Program(), c.name, c.args)
			os.Exit(2)
		}
		out := newOutput(os.Stdout, g.charset)
		g.out = out
		err := c.run(args)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			logrus.Fatalln(describe(err))
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s: unknown command\n", args[0])
	usage()
}
