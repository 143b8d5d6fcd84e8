package model

import (
	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/scale"
)

type NoteView struct {
	Name   string `json:"name" yaml:"name"`
	Flat   string `json:"flat" yaml:"flat"`
	Octave int    `json:"octave" yaml:"octave"`
	Offset int    `json:"offset" yaml:"offset"`
	Key    uint8  `json:"midi_key" yaml:"midi_key"`
	Debug  string `json:"debug" yaml:"debug"`
}

type ChordView struct {
	Name   string   `json:"name" yaml:"name"`
	Family string   `json:"family" yaml:"family"`
	Sharp  string   `json:"sharp" yaml:"sharp"`
	Flat   string   `json:"flat" yaml:"flat"`
	Steps  []uint   `json:"steps" yaml:"steps"`
	Notes  []string `json:"notes" yaml:"notes"`
}

type ScaleView struct {
	Name  string   `json:"name" yaml:"name"`
	Kind  string   `json:"kind" yaml:"kind"`
	Sharp string   `json:"sharp" yaml:"sharp"`
	Flat  string   `json:"flat" yaml:"flat"`
	Notes []string `json:"notes" yaml:"notes"`
}

// ShapeView describes a catalog entry without a root.
type ShapeView struct {
	Key    string `json:"key" yaml:"key"`
	Family string `json:"family" yaml:"family"`
	Suffix string `json:"suffix" yaml:"suffix"`
	Steps  []uint `json:"steps" yaml:"steps"`
}

func NewNoteView(n note.Note) NoteView {
	return NoteView{
		Name:   n.Sharp(),
		Flat:   n.Flat(),
		Octave: int(n.Octave()),
		Offset: n.Offset(),
		Key:    uint8(n.Key()),
		Debug:  n.Debug(),
	}
}

func noteNames(notes note.Notes) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.Sharp()
	}
	return res
}

func NewChordView(c chord.Chord) ChordView {
	chordSteps := c.Steps()
	steps := make([]uint, len(chordSteps))
	for i, s := range chordSteps {
		steps[i] = uint(s)
	}
	return ChordView{
		Name:   c.String(),
		Family: c.Family().String(),
		Sharp:  c.Sharp(),
		Flat:   c.Flat(),
		Steps:  steps,
		Notes:  noteNames(c.Notes()),
	}
}

func NewChordViews(chords []chord.Chord) []ChordView {
	res := make([]ChordView, 0, len(chords))
	for _, c := range chords {
		res = append(res, NewChordView(c))
	}
	return res
}

func NewScaleView(s scale.Scale) ScaleView {
	return ScaleView{
		Name:  s.String(),
		Kind:  s.Kind().String(),
		Sharp: s.Sharp(),
		Flat:  s.Flat(),
		Notes: noteNames(s.Notes()),
	}
}

func NewShapeView(s chord.Shape) ShapeView {
	steps := make([]uint, len(s.Steps))
	for i, t := range s.Steps {
		steps[i] = uint(t)
	}
	return ShapeView{Key: s.Key, Family: s.Family.String(), Suffix: s.Suffix, Steps: steps}
}
