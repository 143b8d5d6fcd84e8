package note

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPitchClass = errors.New("invalid pitch class")

// PitchClass is a note with its octave dropped, 0 (C) through 11 (B).
type PitchClass uint8

var sharpNames = [SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatNames = [SemitonesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

func (pc PitchClass) check() {
	if pc >= SemitonesPerOctave {
		panic(errors.Wrapf(ErrInvalidPitchClass, "value %d", uint8(pc)))
	}
}

func (pc PitchClass) Sharp() string {
	pc.check()
	return sharpNames[pc]
}

func (pc PitchClass) Flat() string {
	pc.check()
	return flatNames[pc]
}

// IsNatural reports whether pc is a white key.
func (pc PitchClass) IsNatural() bool {
	return pc.Sharp() == pc.Flat()
}

func (pc PitchClass) String() string {
	return pc.Sharp()
}

// PitchClassSet is a set of pitch classes, one bit per class.
type PitchClassSet uint16

func (s PitchClassSet) Add(pc PitchClass) PitchClassSet {
	pc.check()
	return s | 1<<pc
}

func (s PitchClassSet) Contains(pc PitchClass) bool {
	return pc < SemitonesPerOctave && s&(1<<pc) != 0
}

func (s PitchClassSet) IsSubsetOf(other PitchClassSet) bool {
	return s&^other == 0
}

func (s PitchClassSet) Len() int {
	n := 0
	for pc := PitchClass(0); pc < SemitonesPerOctave; pc++ {
		if s.Contains(pc) {
			n++
		}
	}
	return n
}

// PitchClasses lists the members in ascending order starting from C.
func (s PitchClassSet) PitchClasses() []PitchClass {
	var res []PitchClass
	for pc := PitchClass(0); pc < SemitonesPerOctave; pc++ {
		if s.Contains(pc) {
			res = append(res, pc)
		}
	}
	return res
}

func (s PitchClassSet) String() string {
	var names []string
	for _, pc := range s.PitchClasses() {
		names = append(names, pc.Sharp())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
