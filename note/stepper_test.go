package note

import (
	"testing"

	"github.com/jsphweid/musika/tone"
	"github.com/stretchr/testify/assert"
)

func TestStepper(t *testing.T) {
	s := NewStepper(C, tone.H, tone.H)

	assert := assert.New(t)
	n, ok := s.Next()
	assert.True(ok)
	assert.Equal(C, n)
	n, ok = s.Next()
	assert.True(ok)
	assert.Equal(CSharp, n)
	n, ok = s.Next()
	assert.True(ok)
	assert.Equal(D, n)
	_, ok = s.Next()
	assert.False(ok)
	_, ok = s.Next()
	assert.False(ok)
}

func TestStepperWithoutSteps(t *testing.T) {
	assert.Equal(t, Notes{G}, Step(G))
}

func TestStepAcceptsZeroSteps(t *testing.T) {
	assert.Equal(t, Notes{E, E, G}, Step(E, 0, 3))
}

func TestStepMajorScale(t *testing.T) {
	notes := Step(C, tone.W, tone.W, tone.H, tone.W, tone.W, tone.W, tone.H)

	assert := assert.New(t)
	assert.Len(notes, 8)
	assert.Equal(Notes{C, D, E, F, G, A.UpOneOctave(), B.UpOneOctave(), C.UpOneOctave()}, notes)
	assert.Equal("C, D, E, F, G, A, B, C", notes.Sharp())
	assert.Equal(Octave(5), notes[7].Octave())
}

func TestStepDoesNotFold(t *testing.T) {
	notes := Step(A, 3, 4)
	assert.Equal(t, Notes{A, C, E}, notes)

	notes = Step(GSharp, 4)
	assert.Equal(t, 12, notes[1].Offset())
	assert.Equal(t, C, notes[1].Base())
}

func TestNotesRendering(t *testing.T) {
	notes := Notes{C, DSharp, FSharp, A}

	assert := assert.New(t)
	assert.Equal("C, D#, F#, A", notes.Sharp())
	assert.Equal("C, Eb, Gb, A", notes.Flat())
	assert.Equal("C4:C:0, C4:D#:3, C4:F#:6, C3:A:-3", notes.Debug())
}

func TestNotesSteps(t *testing.T) {
	assert.Equal(t, []tone.Tone{4, 3, 3}, Step(C, 4, 3, 3).Steps())
	assert.Nil(t, Notes{C}.Steps())
}

func TestNotesShiftKeepsPitchClasses(t *testing.T) {
	notes := Step(D, 3, 4, 3)

	assert := assert.New(t)
	assert.Equal(notes.Bases(), notes.Add(tone.OctaveTone).Bases())
	assert.Equal(notes.Bases(), notes.Sub(tone.OctaveTone).Bases())
	assert.Equal(notes, notes.Add(tone.OctaveTone).Sub(tone.OctaveTone))
}

func TestPitchClassSet(t *testing.T) {
	set := Notes{C, E, G, C.UpOneOctave()}.PitchClasses()

	assert := assert.New(t)
	assert.Equal(3, set.Len())
	assert.True(set.Contains(C.PitchClass()))
	assert.False(set.Contains(D.PitchClass()))
	assert.Equal("{C, E, G}", set.String())

	assert.True(Notes{E, C}.PitchClasses().IsSubsetOf(set))
	assert.False(Notes{E, B}.PitchClasses().IsSubsetOf(set))
	assert.True(PitchClassSet(0).IsSubsetOf(set))
}
