// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stave_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/unixdj/stave"
)

// show prints s between bars, so that spaces at line ends survive.
func show(s string) {
	for _, l := range strings.SplitAfter(s, "\n") {
		if l != "" {
			fmt.Println("|" + strings.TrimSuffix(l, "\n") + "|")
		}
	}
}

func ExampleDecode() {
	sheet, err := stave.Decode([]byte{
		0b01010100, // blank column
		0b00100000, // treble clef
		0,
	})
	if err != nil {
		log.Fatalln(err)
	}
	s, err := sheet.Render(10)
	if err != nil {
		log.Fatalln(err)
	}
	show(s)
	// Output:
	// |      |
	// |    _ |
	// |   / \|
	// |---|-/|
	// |   |/ |
	// |---|--|
	// |  /|  |
	// |-/-|_-|
	// | |/| \|
	// |-|\|-||
	// | \_|_/|
	// |---|--|
	// | O_/  |
	// |      |
	// |      |
	// |      |
}

func ExampleSheet_Render() {
	sheet, err := stave.Decode([]byte{
		0b00111010,             // 4/4
		0b00000001, 0b01000100, // quarter low E
		0b01100100,             // single slim barline
		0,
	})
	if err != nil {
		log.Fatalln(err)
	}
	s, err := sheet.Render(80)
	if err != nil {
		log.Fatalln(err)
	}
	show(s)
	// Output:
	// |         |
	// |         |
	// |         |
	// |--------+|
	// |        ||
	// |--------||
	// | 4      ||
	// |--------||
	// | 4      ||
	// |------|-||
	// |      | ||
	// |----(@|-+|
	// |         |
	// |         |
	// |         |
	// |         |
}

func ExampleSheet_Render_staves() {
	sheet, _ := stave.Decode([]byte{
		0b00111010, // 4/4
		0b00100100, // left repeat
		0b00110100, // right repeat
		0,
	})
	s, _ := sheet.Render(9)
	show(s)
	// Output:
	// |        |
	// |        |
	// |        |
	// |-----++-|
	// |     || |
	// |-----||-|
	// | 4  0|| |
	// |-----||-|
	// | 4  0|| |
	// |-----||-|
	// |     || |
	// |-----++-|
	// |        |
	// |        |
	// |        |
	// |        |
	// ||
	// |     |
	// |     |
	// |     |
	// |-++--|
	// | ||  |
	// |-||--|
	// | ||0 |
	// |-||--|
	// | ||0 |
	// |-||--|
	// | ||  |
	// |-++--|
	// |     |
	// |     |
	// |     |
	// |     |
}

func ExampleByteError() {
	_, err := stave.Decode([]byte{0b00100000, 0b00001100, 0})
	fmt.Println(err)
	// Output:
	// stave: invalid byte 0b00001100 at offset 1
}
