package quiz

// CurrentChoiceIsCorrect reports whether the selected choice is marked correct.
func (q Question) CurrentChoiceIsCorrect() bool {
	if q.Index < 0 || q.Index >= len(q.Choices) {
		return false
	}
	return q.Choices[q.Index].Correct
}

// MoveSelectionUp selects the previous choice, wrapping to the last one.
func (q *Question) MoveSelectionUp() {
	n := len(q.Choices)
	if n == 0 {
		return
	}
	q.Index = (q.Index - 1 + n) % n
}

// MoveSelectionDown selects the next choice, wrapping to the first one.
func (q *Question) MoveSelectionDown() {
	n := len(q.Choices)
	if n == 0 {
		return
	}
	q.Index = (q.Index + 1) % n
}

// ResetSelection moves the selection back to the first choice.
func (q *Question) ResetSelection() {
	q.Index = 0
}

// Clone returns a copy that does not share the choice slice.
func (q Question) Clone() Question {
	out := q
	out.Choices = append([]Choice(nil), q.Choices...)
	return out
}

// CorrectIndex returns the index of the first correct choice, or -1.
func (q Question) CorrectIndex() int {
	for i, choice := range q.Choices {
		if choice.Correct {
			return i
		}
	}
	return -1
}

// Increment adds one point.
func (s *Score) Increment() {
	// TODO: weight points by streak once sessions track answer history.
	s.Value++
}
