// Package note models pitches as signed semitone offsets from C4 and
// renders them in sharp, flat and register-qualified spellings.
package note

import (
	"github.com/jsphweid/musika/tone"
	"github.com/jsphweid/musika/util"
	"github.com/pkg/errors"
)

// Note is a signed number of semitones away from C4. Two notes are equal
// only when they share both pitch class and register.
type Note struct {
	offset int
}

// The reference table runs from A3 up to G#4; A, A# and B are the notes just
// below C4.
var (
	A      = Note{-3}
	ASharp = Note{-2}
	B      = Note{-1}
	C      = Note{0}
	CSharp = Note{1}
	D      = Note{2}
	DSharp = Note{3}
	E      = Note{4}
	F      = Note{5}
	FSharp = Note{6}
	G      = Note{7}
	GSharp = Note{8}

	DFlat = CSharp
	EFlat = DSharp
	GFlat = FSharp
	AFlat = GSharp
	BFlat = ASharp
)

// All is the twelve reference notes in table order.
var All = []Note{A, ASharp, B, C, CSharp, D, DSharp, E, F, FSharp, G, GSharp}

func FromOffset(offset int) Note {
	return Note{offset}
}

// FromOctave builds the note with pitch class pc in register o.
func FromOctave(o Octave, pc PitchClass) Note {
	pc.check()
	return Note{int(o)*SemitonesPerOctave + int(pc) - translation}
}

func (n Note) Offset() int {
	return n.offset
}

func (n Note) Add(t tone.Tone) Note {
	return Note{n.offset + t.Semitones()}
}

func (n Note) Sub(t tone.Tone) Note {
	return Note{n.offset - t.Semitones()}
}

// Distance is the absolute number of semitones between n and other.
func (n Note) Distance(other Note) tone.Tone {
	return tone.Tone(util.Abs(n.offset - other.offset))
}

func (n Note) Transpose(i tone.Interval) Note {
	return n.Add(i.Tone())
}

func (n Note) UpOneOctave() Note {
	return n.Add(tone.OctaveTone)
}

func (n Note) DownOneOctave() Note {
	return n.Sub(tone.OctaveTone)
}

// Octave returns the register holding n; B3 is one semitone below C4.
func (n Note) Octave() Octave {
	return Octave(util.FloorDiv(n.offset+translation, SemitonesPerOctave))
}

// Base folds n into the reference octave.
func (n Note) Base() Note {
	folded := util.FloorMod(n.offset+translation, SemitonesPerOctave)
	base := Note{folded}
	if base.Octave() != Reference {
		panic(errors.Errorf("note %d folded to %d outside %v", n.offset, folded, Reference))
	}
	return base
}

func (n Note) PitchClass() PitchClass {
	pc := n.Base().offset
	if pc < 0 || pc >= SemitonesPerOctave {
		panic(errors.Wrapf(ErrInvalidPitchClass, "offset %d", n.offset))
	}
	return PitchClass(pc)
}
