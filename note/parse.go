package note

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownNote = errors.New("unknown note")

var byName = map[string]Note{
	"C": C, "C#": CSharp, "Db": DFlat,
	"D": D, "D#": DSharp, "Eb": EFlat,
	"E": E, "F": F, "F#": FSharp, "Gb": GFlat,
	"G": G, "G#": GSharp, "Ab": AFlat,
	"A": A, "A#": ASharp, "Bb": BFlat,
	"B": B,
}

// Parse reads a note name such as "C", "f#", "Bb" or "Db3". Without a
// register the reference table entry is returned, so "A" is A3 like the A
// constant. A trailing register number selects that octave instead.
func Parse(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, errors.Wrap(ErrUnknownNote, "empty name")
	}

	// The letter is case-insensitive, the accidental is not: "AB" is no note.
	nameLen := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		nameLen = 2
	}
	n, ok := byName[strings.ToUpper(s[:1])+s[1:nameLen]]
	if !ok {
		return Note{}, errors.Wrapf(ErrUnknownNote, "%q", s)
	}

	if rest := s[nameLen:]; rest != "" {
		register, err := strconv.Atoi(rest)
		if err != nil {
			return Note{}, errors.Wrapf(ErrUnknownNote, "bad register in %q", s)
		}
		return FromOctave(Octave(register), n.PitchClass()), nil
	}
	return n, nil
}

// MustParse is Parse for names known to be valid.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseAll parses every name, stopping at the first failure.
func ParseAll(names []string) (Notes, error) {
	res := make(Notes, 0, len(names))
	for _, name := range names {
		n, err := Parse(name)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}
