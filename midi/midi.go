// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package midi exports decoded music as a Standard MIDI File.
//
// The file has two tracks.  The first carries the tempo and a time
// signature event for every time signature change, the second the
// notes.  Dynamics and articulation are not exported.
package midi // import "github.com/unixdj/stave/midi"

import (
	"errors"
	"io"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/unixdj/stave"
	"github.com/unixdj/stave/coding"
)

// Resolution is the number of ticks per quarter note.
const Resolution = 480

// Defaults for zero Options fields.
const (
	DefaultTempo    = 120
	DefaultVelocity = 100
	DefaultName     = "Notes"
)

// Channels, counted from 0.
const (
	Channel     = 0
	DrumChannel = 9 // General MIDI percussion
)

// Time signature metronome settings.
const (
	clocksPerClick  = 24
	demisemiquavers = 8
)

// ErrNoNotes is returned when there is nothing to play.
var ErrNoNotes = errors.New("midi: no notes")

// Options control the export.
type Options struct {
	Tempo    float64 // beats per minute
	Velocity uint8   // note on velocity
	Name     string  // name of the note track
}

func (o *Options) defaults() {
	if o.Tempo <= 0 {
		o.Tempo = DefaultTempo
	}
	if o.Velocity == 0 || o.Velocity > 127 {
		o.Velocity = DefaultVelocity
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
}

// scale holds the semitones above C of the white keys.
var scale = [7]int{0, 2, 4, 5, 7, 9, 11}

// step returns the diatonic step of row r under clef c, counting C0
// as 0.  Row 1 is B3 in treble clef and D2 in bass clef.
func step(r coding.Row, c coding.ClefValue) int {
	d := 3*7 + 6 + int(r) - 1
	if c == coding.Bass {
		d -= 12
	}
	return d
}

// Key returns the MIDI key number of a note on row r under clef c,
// raised or lowered by semis semitones.  Middle C is 60.
func Key(r coding.Row, c coding.ClefValue, semis int) uint8 {
	d := step(r, c)
	k := 12*(d/7+1) + scale[d%7] + semis
	return uint8(min(max(k, 0), 127))
}

// keyAccidental returns the accidental key signature k gives to notes
// on row r under clef c.  The last accidental in drawing order on a
// row with the same note name wins.
func keyAccidental(k coding.KeyValue, r coding.Row, c coding.ClefValue) coding.Accidental {
	l := step(r, c) % 7
	a := coding.NoAccidental
	for _, kr := range k.Rows() {
		if step(kr, c)%7 == l {
			a = k.Accidental(kr)
		}
	}
	return a
}

// ticks returns the length of n in ticks.
func ticks(n coding.NoteValue) uint32 {
	t := uint32(n.Duration.Ticks() * Resolution / 64)
	if n.Dot {
		t += t / 2
	}
	return t
}

// encoder accumulates the note track.
type encoder struct {
	track smf.Track
	delta uint32 // ticks since the last event
	on    bool   // a note is sounding
	ch    uint8  // channel of the sounding note
	key   uint8  // key of the sounding note
	notes int
}

func (e *encoder) add(m smf.Message) {
	e.track = append(e.track, smf.Event{Delta: e.delta, Message: m})
	e.delta = 0
}

func (e *encoder) release() {
	if e.on {
		e.add(smf.Message(gomidi.NoteOff(e.ch, e.key)))
		e.on = false
	}
}

func (e *encoder) play(ch, key, vel uint8, tied bool, t uint32) {
	if !tied || !e.on || e.ch != ch || e.key != key {
		e.release()
		e.add(smf.Message(gomidi.NoteOn(ch, key, vel)))
		e.on, e.ch, e.key = true, ch, key
		e.notes++
	}
	e.delta += t
}

func (e *encoder) rest(t uint32) {
	e.release()
	e.delta += t
}

// Export converts groups into a format 1 Standard MIDI File.  Notes
// and rests drawn with an error marker are skipped.
func Export(groups []stave.Group, o Options) (*smf.SMF, error) {
	o.defaults()
	var (
		e     encoder
		cond  = smf.Track{}
		now   uint32 // absolute time
		last  uint32 // absolute time of the last conductor event
		clef  = coding.Treble
		key   coding.KeyValue
		chans = [...]uint8{Channel, Channel, DrumChannel, Channel}
	)
	cond = append(cond,
		smf.Event{Message: smf.Message(smf.MetaTrackSequenceName("Tempo"))},
		smf.Event{Message: smf.Message(smf.MetaTempo(o.Tempo))})
	e.add(smf.Message(smf.MetaTrackSequenceName(o.Name)))
	for i := range groups {
		g := &groups[i]
		switch g.Kind {
		case coding.Clef:
			if g.Clef != coding.BadClef {
				clef = g.Clef
			}
		case coding.Key:
			key = g.Key
		case coding.Time:
			ts := smf.MetaTimeSig(uint8(g.Time.Top), uint8(g.Time.Bottom),
				clocksPerClick, demisemiquavers)
			cond = append(cond, smf.Event{Delta: now - last,
				Message: smf.Message(ts)})
			last = now
		case coding.Note, coding.Beamed:
			n := g.Note
			t := ticks(n)
			if g.Malformed || t == 0 {
				continue
			}
			if n.IsRest() {
				e.rest(t)
				now += t
				continue
			}
			a := g.Carry
			if a == coding.NoAccidental {
				a = keyAccidental(key, n.Pitch, clef)
			}
			e.play(chans[clef], Key(n.Pitch, clef, a.Semitones()),
				o.Velocity, g.Tied, t)
			now += t
		}
	}
	if e.notes == 0 {
		return nil, ErrNoNotes
	}
	e.release()
	e.add(smf.EOT)
	cond = append(cond, smf.Event{Message: smf.EOT})

	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(Resolution)
	s.Add(cond)
	s.Add(e.track)
	return s, nil
}

// Write exports groups and writes the file to w.
func Write(w io.Writer, groups []stave.Group, o Options) error {
	s, err := Export(groups, o)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}
