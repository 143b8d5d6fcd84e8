// Package scale builds scales from a tonic and a fixed list of steps.
package scale

import (
	"fmt"
	"io"

	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/tone"
	"github.com/pkg/errors"
)

var ErrUnknownKind = errors.New("unknown scale kind")

type Kind int

const (
	MajorKind Kind = iota
	MinorKind
	PentatonicMinorKind
)

type rule struct {
	key    string
	suffix string
	steps  []tone.Tone
}

var rules = map[Kind]rule{
	MajorKind:           {"major", " major", []tone.Tone{2, 2, 1, 2, 2, 2, 1}},
	MinorKind:           {"minor", " minor", []tone.Tone{2, 1, 2, 2, 1, 2, 2}},
	PentatonicMinorKind: {"penta-minor", " penta minor", []tone.Tone{3, 2, 2, 3, 2}},
}

// Kinds lists every kind in a stable order.
func Kinds() []Kind {
	return []Kind{MajorKind, MinorKind, PentatonicMinorKind}
}

func KindByKey(key string) (Kind, error) {
	for _, k := range Kinds() {
		if rules[k].key == key {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", key)
}

func (k Kind) Key() string {
	return rules[k].key
}

func (k Kind) Steps() []tone.Tone {
	steps := rules[k].steps
	res := make([]tone.Tone, len(steps))
	copy(res, steps)
	return res
}

func (k Kind) String() string {
	if r, ok := rules[k]; ok {
		return r.key
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Scale is an immutable run of notes starting on the tonic. Members keep
// their raw offsets, so the last note of a heptatonic scale is the tonic an
// octave up.
type Scale struct {
	kind   Kind
	suffix string
	notes  note.Notes
}

func New(kind Kind, tonic note.Note) Scale {
	r, ok := rules[kind]
	if !ok {
		panic(errors.Wrapf(ErrUnknownKind, "%d", int(kind)))
	}
	return Scale{kind: kind, suffix: r.suffix, notes: note.Step(tonic, r.steps...)}
}

func Major(tonic note.Note) Scale {
	return New(MajorKind, tonic)
}

func Minor(tonic note.Note) Scale {
	return New(MinorKind, tonic)
}

func PentatonicMinor(tonic note.Note) Scale {
	return New(PentatonicMinorKind, tonic)
}

func (s Scale) Kind() Kind {
	return s.kind
}

func (s Scale) Tonic() note.Note {
	return s.notes[0]
}

func (s Scale) Notes() note.Notes {
	return s.notes.Clone()
}

func (s Scale) Len() int {
	return len(s.notes)
}

func (s Scale) Steps() []tone.Tone {
	return s.notes.Steps()
}

// Degree returns the i-th member counting the tonic as degree 1.
func (s Scale) Degree(i int) (note.Note, bool) {
	if i < 1 || i > len(s.notes) {
		return note.Note{}, false
	}
	return s.notes[i-1], true
}

func (s Scale) PitchClasses() note.PitchClassSet {
	return s.notes.PitchClasses()
}

func (s Scale) UpOneOctave() Scale {
	return Scale{kind: s.kind, suffix: s.suffix, notes: s.notes.Add(tone.OctaveTone)}
}

func (s Scale) DownOneOctave() Scale {
	return Scale{kind: s.kind, suffix: s.suffix, notes: s.notes.Sub(tone.OctaveTone)}
}

func (s Scale) String() string {
	if len(s.notes) == 0 {
		return s.suffix
	}
	return s.Tonic().String() + s.suffix
}

func (s Scale) Sharp() string {
	return s.String() + " [" + s.notes.Sharp() + "]"
}

func (s Scale) Flat() string {
	return s.String() + " [" + s.notes.Flat() + "]"
}

// Debug is "C major [C4:C:0, ...]", with no kind prefix.
func (s Scale) Debug() string {
	return s.String() + " [" + s.notes.Debug() + "]"
}

// Format implements fmt.Formatter: %X and %x list the members with sharps
// or flats, %o uses Debug.
func (s Scale) Format(f fmt.State, verb rune) {
	switch verb {
	case 'X':
		io.WriteString(f, s.Sharp())
	case 'x':
		io.WriteString(f, s.Flat())
	case 'o':
		io.WriteString(f, s.Debug())
	default:
		io.WriteString(f, s.String())
	}
}
