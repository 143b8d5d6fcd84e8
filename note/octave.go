package note

import "fmt"

// Octave is a register number. C4 is the register of the reference C.
type Octave int

const (
	SemitonesPerOctave = 12

	Reference Octave = 4

	// translation shifts raw offsets so that register arithmetic is done
	// relative to octave 0.
	translation = int(Reference) * SemitonesPerOctave
)

func Default() Octave {
	return Reference
}

func (o Octave) String() string {
	return fmt.Sprintf("C%d", int(o))
}
