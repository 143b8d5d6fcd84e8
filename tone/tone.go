// Package tone holds semitone distances: the raw Tone count and the named
// Interval table built on top of it.
package tone

import "fmt"

// Tone is a number of semitones. It is never negative and may exceed an
// octave for compound distances.
type Tone uint

const (
	H          Tone = 1
	W          Tone = 2
	OctaveTone Tone = 12
)

func (t Tone) String() string {
	switch t {
	case H:
		return "H"
	case W:
		return "W"
	}
	return fmt.Sprintf("T(%d)", uint(t))
}

// Semitones returns t as a signed int for offset arithmetic.
func (t Tone) Semitones() int {
	return int(t)
}
