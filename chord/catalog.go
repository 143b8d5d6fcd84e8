package chord

import (
	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/tone"
	"github.com/pkg/errors"
)

var ErrUnknownShape = errors.New("unknown chord shape")

// Shape is a named construction rule: the steps stacked on the root and the
// suffix printed after the root name.
type Shape struct {
	Key    string
	Family Family
	Suffix string
	Steps  []tone.Tone
}

func (s Shape) Build(root note.Note) Chord {
	return New(s.Family, s.Suffix, root, s.Steps...)
}

var (
	major   = Shape{"major", MajorFamily, "", []tone.Tone{4, 3}}
	major7  = Shape{"major7", MajorFamily, "maj7", []tone.Tone{4, 3, 4}}
	major9  = Shape{"major9", MajorFamily, "maj9", []tone.Tone{4, 3, 4, 3}}
	major11 = Shape{"major11", MajorFamily, "maj11", []tone.Tone{4, 3, 4, 3, 3}}
	major13 = Shape{"major13", MajorFamily, "maj13", []tone.Tone{4, 3, 4, 3, 3, 4}}

	minor    = Shape{"minor", MinorFamily, "m", []tone.Tone{3, 4}}
	minor7   = Shape{"minor7", MinorFamily, "m7", []tone.Tone{3, 4, 3}}
	minor7b5 = Shape{"minor7b5", MinorFamily, "m7(b5)", []tone.Tone{3, 3, 4}}
	minor9   = Shape{"minor9", MinorFamily, "m9", []tone.Tone{3, 4, 3, 4}}
	minor11  = Shape{"minor11", MinorFamily, "m11", []tone.Tone{3, 4, 3, 4, 3}}
	minor13  = Shape{"minor13", MinorFamily, "m13", []tone.Tone{3, 4, 3, 4, 3, 4}}

	dominant7       = Shape{"dominant7", DominantFamily, "7", []tone.Tone{4, 3, 3}}
	dominant7b5     = Shape{"dominant7b5", DominantFamily, "7b5", []tone.Tone{4, 2, 4}}
	dominant7s5     = Shape{"dominant7s5", DominantFamily, "7#5", []tone.Tone{4, 4, 2}}
	dominant9       = Shape{"dominant9", DominantFamily, "9", []tone.Tone{4, 3, 3, 4}}
	dominant11      = Shape{"dominant11", DominantFamily, "11", []tone.Tone{4, 3, 3, 4, 3}}
	dominant13      = Shape{"dominant13", DominantFamily, "13", []tone.Tone{4, 3, 3, 4, 3, 4}}
	dominant13b9b13 = Shape{"dominant13b9b13", DominantFamily, "13b9b13", []tone.Tone{4, 3, 3, 3, 4, 3}}

	diminished  = Shape{"diminished", DiminishedFamily, "dim", []tone.Tone{3, 3}}
	diminished7 = Shape{"diminished7", DiminishedFamily, "dim7", []tone.Tone{3, 3, 3}}
)

// catalog is ordered by family, then by extension. The finder reports
// matches in this order.
var catalog = []Shape{
	major, major7, major9, major11, major13,
	minor, minor7, minor7b5, minor9, minor11, minor13,
	dominant7, dominant7b5, dominant7s5, dominant9, dominant11, dominant13, dominant13b9b13,
	diminished, diminished7,
}

// Shapes returns a copy of the catalog in enumeration order.
func Shapes() []Shape {
	res := make([]Shape, len(catalog))
	copy(res, catalog)
	return res
}

func ShapeByKey(key string) (Shape, error) {
	for _, s := range catalog {
		if s.Key == key {
			return s, nil
		}
	}
	return Shape{}, errors.Wrapf(ErrUnknownShape, "%q", key)
}

func Major(root note.Note) Chord { return major.Build(root) }
func Major7(root note.Note) Chord { return major7.Build(root) }
func Major9(root note.Note) Chord { return major9.Build(root) }
func Major11(root note.Note) Chord { return major11.Build(root) }
func Major13(root note.Note) Chord { return major13.Build(root) }
func Minor(root note.Note) Chord { return minor.Build(root) }
func Minor7(root note.Note) Chord { return minor7.Build(root) }
func Minor7b5(root note.Note) Chord { return minor7b5.Build(root) }
func Minor9(root note.Note) Chord { return minor9.Build(root) }
func Minor11(root note.Note) Chord { return minor11.Build(root) }
func Minor13(root note.Note) Chord { return minor13.Build(root) }
func Dominant7(root note.Note) Chord { return dominant7.Build(root) }
func Dominant7b5(root note.Note) Chord { return dominant7b5.Build(root) }
func Dominant7s5(root note.Note) Chord { return dominant7s5.Build(root) }
func Dominant9(root note.Note) Chord { return dominant9.Build(root) }
func Dominant11(root note.Note) Chord { return dominant11.Build(root) }
func Dominant13(root note.Note) Chord { return dominant13.Build(root) }
func Dominant13b9b13(root note.Note) Chord { return dominant13b9b13.Build(root) }
func Diminished(root note.Note) Chord { return diminished.Build(root) }
func Diminished7(root note.Note) Chord { return diminished7.Build(root) }
