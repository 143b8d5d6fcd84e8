// Package chord builds named chords from a root and a list of steps and
// searches the catalog for chords holding a set of pitch classes.
package chord

import (
	"fmt"
	"io"

	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/tone"
)

// Family tags a chord with the quality it was built from.
type Family int

const (
	MajorFamily Family = iota
	MinorFamily
	DominantFamily
	DiminishedFamily
)

var familyNames = map[Family]string{
	MajorFamily:      "major",
	MinorFamily:      "minor",
	DominantFamily:   "dominant",
	DiminishedFamily: "diminished",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Chord is an immutable, materialised run of notes with its display suffix.
// The root is stored as given and the other notes keep their raw offsets.
type Chord struct {
	family Family
	suffix string
	notes  note.Notes
}

// New stacks steps on top of root. A zero step is accepted and repeats the
// previous note.
func New(family Family, suffix string, root note.Note, steps ...tone.Tone) Chord {
	return Chord{
		family: family,
		suffix: suffix,
		notes:  note.Step(root, steps...),
	}
}

func (c Chord) Family() Family {
	return c.family
}

func (c Chord) Suffix() string {
	return c.suffix
}

func (c Chord) Root() note.Note {
	return c.notes[0]
}

// Notes returns a copy of the members, root first.
func (c Chord) Notes() note.Notes {
	return c.notes.Clone()
}

func (c Chord) Len() int {
	return len(c.notes)
}

func (c Chord) Steps() []tone.Tone {
	return c.notes.Steps()
}

func (c Chord) PitchClasses() note.PitchClassSet {
	return c.notes.PitchClasses()
}

// Contains reports whether every pitch class of notes is in c, whatever
// their octave.
func (c Chord) Contains(notes ...note.Note) bool {
	return note.Notes(notes).PitchClasses().IsSubsetOf(c.PitchClasses())
}

// WithNote returns a new chord with n appended; c is left untouched.
func (c Chord) WithNote(n note.Note) Chord {
	notes := make(note.Notes, len(c.notes), len(c.notes)+1)
	copy(notes, c.notes)
	return Chord{family: c.family, suffix: c.suffix, notes: append(notes, n)}
}

func (c Chord) UpOneOctave() Chord {
	return Chord{family: c.family, suffix: c.suffix, notes: c.notes.Add(tone.OctaveTone)}
}

func (c Chord) DownOneOctave() Chord {
	return Chord{family: c.family, suffix: c.suffix, notes: c.notes.Sub(tone.OctaveTone)}
}

// String is the chord symbol, e.g. "Cmaj7".
func (c Chord) String() string {
	if len(c.notes) == 0 {
		return c.suffix
	}
	return c.Root().String() + c.suffix
}

// Sharp is the symbol followed by the members spelled with sharps.
func (c Chord) Sharp() string {
	return c.String() + " [" + c.notes.Sharp() + "]"
}

// Flat is the symbol followed by the members spelled with flats. The symbol
// itself keeps the sharp spelling of the root.
func (c Chord) Flat() string {
	return c.String() + " [" + c.notes.Flat() + "]"
}

func (c Chord) Debug() string {
	return fmt.Sprintf("%s(%s) [%s]", c.family, c, c.notes.Debug())
}

// Format implements fmt.Formatter: %X and %x list the members with sharps
// and flats, %o uses the debug form of every member.
func (c Chord) Format(f fmt.State, verb rune) {
	switch verb {
	case 'X':
		io.WriteString(f, c.Sharp())
	case 'x':
		io.WriteString(f, c.Flat())
	case 'o':
		io.WriteString(f, c.Debug())
	default:
		io.WriteString(f, c.String())
	}
}
