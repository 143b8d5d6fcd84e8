package note

import "github.com/jsphweid/musika/tone"

// Stepper walks from a root through a list of steps, yielding the root and
// then the running sum after each step. A zero step repeats the previous
// note.
type Stepper struct {
	current Note
	started bool
	steps   []tone.Tone
}

func NewStepper(root Note, steps ...tone.Tone) *Stepper {
	return &Stepper{current: root, steps: steps}
}

// Next returns the next note, or false once the steps are used up.
func (s *Stepper) Next() (Note, bool) {
	if !s.started {
		s.started = true
		return s.current, true
	}
	if len(s.steps) == 0 {
		return Note{}, false
	}
	s.current = s.current.Add(s.steps[0])
	s.steps = s.steps[1:]
	return s.current, true
}

// Step materialises the whole stepper output.
func Step(root Note, steps ...tone.Tone) Notes {
	res := make(Notes, 0, len(steps)+1)
	s := NewStepper(root, steps...)
	for n, ok := s.Next(); ok; n, ok = s.Next() {
		res = append(res, n)
	}
	return res
}
