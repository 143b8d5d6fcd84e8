package chord

import "github.com/jsphweid/musika/note"

// All builds every catalog shape on root.
func All(root note.Note) []Chord {
	res := make([]Chord, 0, len(catalog))
	for _, s := range catalog {
		res = append(res, s.Build(root))
	}
	return res
}

// FindContaining returns the chords rooted at root whose pitch classes
// include every pitch class of query. An empty query matches the whole
// catalog; no match is an empty result.
func FindContaining(root note.Note, query ...note.Note) []Chord {
	want := note.Notes(query).PitchClasses()
	var res []Chord
	for _, c := range All(root) {
		if want.IsSubsetOf(c.PitchClasses()) {
			res = append(res, c)
		}
	}
	return res
}
