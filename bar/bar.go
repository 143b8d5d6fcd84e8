// Package bar lays chords, notes and silences out as a progression line.
// Fractions are carried along but play no part in the rendering.
package bar

import (
	"fmt"
	"strings"

	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/note"
)

const (
	elementSeparator = " - "
	barSeparator     = " | "
)

// Element is one slot of a bar.
type Element interface {
	fmt.Stringer
	Fraction() uint8
}

// Silence is a rest lasting 1/n of the bar.
type Silence uint8

func (s Silence) String() string { return "_" }
func (s Silence) Fraction() uint8 { return uint8(s) }

type chordElement struct {
	chord    chord.Chord
	fraction uint8
}

func (e chordElement) String() string { return e.chord.String() }
func (e chordElement) Fraction() uint8 { return e.fraction }

type noteElement struct {
	note     note.Note
	fraction uint8
}

func (e noteElement) String() string { return e.note.String() }
func (e noteElement) Fraction() uint8 { return e.fraction }

// Bar is an immutable list of elements. Every With* method returns a new
// bar.
type Bar struct {
	elements []Element
}

func New() Bar {
	return Bar{}
}

func (b Bar) with(e Element) Bar {
	elements := make([]Element, len(b.elements), len(b.elements)+1)
	copy(elements, b.elements)
	return Bar{elements: append(elements, e)}
}

func (b Bar) WithChord(c chord.Chord, fraction uint8) Bar {
	return b.with(chordElement{chord: c, fraction: fraction})
}

func (b Bar) WithNote(n note.Note, fraction uint8) Bar {
	return b.with(noteElement{note: n, fraction: fraction})
}

func (b Bar) WithSilence(fraction uint8) Bar {
	return b.with(Silence(fraction))
}

func (b Bar) Elements() []Element {
	res := make([]Element, len(b.elements))
	copy(res, b.elements)
	return res
}

func (b Bar) String() string {
	parts := make([]string, len(b.elements))
	for i, e := range b.elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, elementSeparator)
}

// Show renders a progression, e.g. "| C - G | Am - F |".
func Show(bars ...Bar) string {
	parts := make([]string, len(bars))
	for i, b := range bars {
		parts[i] = b.String()
	}
	return "| " + strings.Join(parts, barSeparator) + " |"
}
