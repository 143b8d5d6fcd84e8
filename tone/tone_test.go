package tone

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("H", H.String())
	assert.Equal("W", W.String())
	assert.Equal("T(3)", Tone(3).String())
	assert.Equal("T(12)", OctaveTone.String())
}

func TestIntervalNames(t *testing.T) {
	cases := map[Interval]string{
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
	for i, name := range cases {
		assert.Equal(t, name, i.String())
		assert.Equal(t, i, IntervalOf(i.Tone()))
	}
	assert.Equal(t, Tritone, Augmented4th)
	assert.Equal(t, Tritone, Diminished5th)
}

func TestIntervalOfReducesCompoundSizes(t *testing.T) {
	for size := Tone(13); size < 24; size++ {
		t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
			assert.Equal(t, Interval(size-12), IntervalOf(size))
		})
	}
}

func TestIntervalOfRejectsZero(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { IntervalOf(0) })
	assert.Panics(func() { IntervalOf(24) })
	assert.NotPanics(func() { IntervalOf(12) })
}

func TestUnmappedIntervalPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Interval(0).String() })
	assert.Panics(t, func() { _ = Interval(13).String() })
}
