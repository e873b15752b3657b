package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument indicates that a question could not be built from its inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// NewQuestion builds a question from a prompt, a comma separated choice list, and
// the zero-based index of the correct choice. Blank choice labels are rejected.
func NewQuestion(prompt, choices string, answer int) (Question, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Question{}, fmt.Errorf("%w: question text is required", ErrInvalidArgument)
	}
	labels := SplitChoices(choices)
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return Question{}, fmt.Errorf("%w: choice %d is blank", ErrInvalidArgument, i)
		}
	}
	if answer < 0 || answer >= len(labels) {
		return Question{}, fmt.Errorf("%w: answer index %d out of range [0, %d)", ErrInvalidArgument, answer, len(labels))
	}
	return FromLabels(prompt, labels, answer), nil
}

// SplitChoices splits a comma separated choice list. Surrounding whitespace of the
// whole list is trimmed; individual labels are kept verbatim.
func SplitChoices(choices string) []string {
	return strings.Split(strings.TrimSpace(choices), ",")
}

// FromLabels builds a question whose choice at answer is the only correct one.
func FromLabels(prompt string, labels []string, answer int) Question {
	out := Question{Prompt: prompt, Choices: make([]Choice, 0, len(labels))}
	for i, label := range labels {
		out.Choices = append(out.Choices, Choice{Text: label, Correct: i == answer})
	}
	return out
}
