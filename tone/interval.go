package tone

import "github.com/pkg/errors"

var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a canonical distance between 1 and 12 semitones.
type Interval uint8

const (
	Minor2nd   Interval = 1
	Major2nd   Interval = 2
	Minor3rd   Interval = 3
	Major3rd   Interval = 4
	Perfect4th Interval = 5
	Tritone    Interval = 6
	Perfect5th Interval = 7
	Minor6th   Interval = 8
	Major6th   Interval = 9
	Minor7th   Interval = 10
	Major7th   Interval = 11
	Octave     Interval = 12

	Augmented4th  = Tritone
	Diminished5th = Tritone
)

var intervalNames = map[Interval]string{
	Minor2nd:   "Minor2nd",
	Major2nd:   "Major2nd",
	Minor3rd:   "Minor3rd",
	Major3rd:   "Major3rd",
	Perfect4th: "Perfect4th",
	Tritone:    "Tritone",
	Perfect5th: "Perfect5th",
	Minor6th:   "Minor6th",
	Major6th:   "Major6th",
	Minor7th:   "Minor7th",
	Major7th:   "Major7th",
	Octave:     "Octave",
}

// IntervalOf reduces size modulo an octave and returns the matching
// interval. Exactly 12 is an Octave; any other multiple of 12, including 0,
// has no interval and panics.
func IntervalOf(size Tone) Interval {
	reduced := size % OctaveTone
	if reduced == 0 {
		if size == OctaveTone {
			return Octave
		}
		panic(errors.Wrapf(ErrInvalidInterval, "size %d", uint(size)))
	}
	return Interval(reduced)
}

func (i Interval) Tone() Tone {
	return Tone(i)
}

func (i Interval) String() string {
	name, ok := intervalNames[i]
	if !ok {
		panic(errors.Wrapf(ErrInvalidInterval, "value %d", uint8(i)))
	}
	return name
}
