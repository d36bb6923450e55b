// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/stave"
)

const maxWidth = 255

// config holds defaults read from the configuration file.  Command
// line options override them.
type config struct {
	Width    int     `yaml:"width"`
	Charset  string  `yaml:"charset"`
	Tempo    float64 `yaml:"tempo"`
	Velocity uint8   `yaml:"velocity"`
	Debug    bool    `yaml:"debug"`
}

func defaultConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "stave", "config.yaml")
}

// loadConfig reads the configuration file fn, or the default one if
// fn is empty.  A missing file is an error only if must is set.
func loadConfig(fn string, must bool) (config, error) {
	var c config
	if fn == "" {
		if fn = defaultConfig(); fn == "" {
			return c, nil
		}
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if !must && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, errors.Wrap(err, "config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && len(bytes.TrimSpace(b)) != 0 {
		return c, errors.Wrapf(err, "config %s", fn)
	}
	return c, c.check(fn)
}

func (c *config) check(fn string) error {
	switch {
	case c.Width != 0 && (c.Width < stave.MinWidth || c.Width > maxWidth):
		return errors.Errorf("config %s: width %d out of range %d-%d",
			fn, c.Width, stave.MinWidth, maxWidth)
	case c.Charset != "" && !slices.Contains(charsetNames, c.Charset):
		return errors.Errorf("config %s: unknown charset %q",
			fn, c.Charset)
	case c.Tempo < 0:
		return errors.Errorf("config %s: negative tempo", fn)
	case c.Velocity > 127:
		return errors.Errorf("config %s: velocity %d above 127",
			fn, c.Velocity)
	}
	return nil
}

// apply sets the global defaults from c.
func (c *config) apply() {
	g.width = c.Width
	if c.Charset != "" {
		g.charset = c.Charset
	}
	g.tempo = c.Tempo
	g.velocity = c.Velocity
	g.debug = g.debug || c.Debug
}
