package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrEmptyScale = errors.New("cannot render an empty scale")

type Options struct {
	Octave   int
	Tempo    float64
	Triads   bool
	Channel  uint8
	Velocity uint8
}

func DefaultOptions() Options {
	return Options{Octave: 4, Tempo: 120, Velocity: 100}
}

// Render lays the scale out as ascending quarter notes and, if asked, follows
// the run with each diatonic triad as a half-note block chord.
func Render(s model.Scale, opts Options) (*smf.SMF, error) {
	if len(s) == 0 {
		return nil, ErrEmptyScale
	}
	if opts.Tempo <= 0 {
		return nil, fmt.Errorf("invalid tempo %v", opts.Tempo)
	}
	if opts.Velocity == 0 {
		opts.Velocity = DefaultOptions().Velocity
	}

	clock := smf.MetricTicks(96)
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(s[0].String()+" scale"))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(opts.Tempo))

	for _, key := range chord.Keys(s, opts.Octave) {
		tr.Add(0, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(clock.Ticks4th(), gomidi.NoteOff(opts.Channel, key))
	}

	if opts.Triads {
		for _, t := range chord.Triads(s) {
			keys := chord.Voicing(t, opts.Octave)
			for _, key := range keys {
				tr.Add(0, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
			}
			for i, key := range keys {
				var delta uint32
				if i == 0 {
					delta = clock.Ticks4th() * 2
				}
				tr.Add(delta, gomidi.NoteOff(opts.Channel, key))
			}
		}
	}
	tr.Close(0)

	res := smf.New()
	res.TimeFormat = clock
	if err := res.Add(tr); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return res, nil
}

func Write(w io.Writer, s *smf.SMF) error {
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

// ReadNotes returns the key of every sounding note-on, in file order.
func ReadNotes(r io.Reader) (res []uint8, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if p := recover(); p != nil {
			res = nil
			e = fmt.Errorf("error parsing midi: %v", p)
		}
	}()

	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading midi: %w", err)
	}
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi: %w", err)
	}

	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, key)
			}
		}
	}
	return res, nil
}
