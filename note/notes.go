package note

import (
	"strings"

	"github.com/jsphweid/musika/tone"
)

// Notes is an ordered run of notes such as a chord or scale body.
type Notes []Note

const separator = ", "

func (ns Notes) join(render func(Note) string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = render(n)
	}
	return strings.Join(parts, separator)
}

func (ns Notes) Sharp() string {
	return ns.join(Note.Sharp)
}

func (ns Notes) Flat() string {
	return ns.join(Note.Flat)
}

func (ns Notes) Debug() string {
	return ns.join(Note.Debug)
}

func (ns Notes) Bases() Notes {
	res := make(Notes, len(ns))
	for i, n := range ns {
		res[i] = n.Base()
	}
	return res
}

func (ns Notes) Add(t tone.Tone) Notes {
	res := make(Notes, len(ns))
	for i, n := range ns {
		res[i] = n.Add(t)
	}
	return res
}

func (ns Notes) Sub(t tone.Tone) Notes {
	res := make(Notes, len(ns))
	for i, n := range ns {
		res[i] = n.Sub(t)
	}
	return res
}

// Steps returns the distances between neighbouring notes.
func (ns Notes) Steps() []tone.Tone {
	if len(ns) < 2 {
		return nil
	}
	res := make([]tone.Tone, 0, len(ns)-1)
	for i := 1; i < len(ns); i++ {
		res = append(res, ns[i-1].Distance(ns[i]))
	}
	return res
}

func (ns Notes) PitchClasses() PitchClassSet {
	var s PitchClassSet
	for _, n := range ns {
		s = s.Add(n.PitchClass())
	}
	return s
}

func (ns Notes) Clone() Notes {
	res := make(Notes, len(ns))
	copy(res, ns)
	return res
}
