// Package bank persists the question bank as a JSON document.
package bank

import "encard/internal/quiz"

// Bank is the persisted collection of all known questions.
type Bank struct {
	Questions []quiz.Question `json:"questions"`
}

// Len returns the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.Questions)
}
