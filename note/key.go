package note

import "gitlab.com/gomidi/midi/v2"

// MiddleC is the MIDI key number of C4.
const MiddleC = 60

// Key returns the MIDI key number of n. Notes outside the MIDI range wrap.
func (n Note) Key() midi.Note {
	return midi.Note(uint8(n.offset + MiddleC))
}

func FromKey(key midi.Note) Note {
	return Note{int(uint8(key)) - MiddleC}
}
