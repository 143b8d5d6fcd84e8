package note

import (
	"fmt"
	"io"
	"strconv"
)

// Sharp spells n with sharps for the black keys.
func (n Note) Sharp() string {
	return n.PitchClass().Sharp()
}

// Flat spells n with flats for the black keys.
func (n Note) Flat() string {
	return n.PitchClass().Flat()
}

func (n Note) String() string {
	return n.Sharp()
}

// Debug renders register, pitch class and raw offset, e.g. "C4:C#:1".
func (n Note) Debug() string {
	return n.Octave().String() + ":" + n.Sharp() + ":" + strconv.Itoa(n.offset)
}

func (n Note) GoString() string {
	return "note.FromOffset(" + strconv.Itoa(n.offset) + ")"
}

// Format implements fmt.Formatter: %X is the sharp spelling, %x the flat
// one, %o the debug form and %d the raw offset. Width and the '-' flag pad
// as they would for a string.
func (n Note) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'x':
		s = n.Flat()
	case 'o':
		s = n.Debug()
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), n.offset)
		return
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, n.GoString())
			return
		}
		s = n.Sharp()
	default:
		s = n.Sharp()
	}
	fmt.Fprintf(f, fmt.FormatString(f, 's'), s)
}
