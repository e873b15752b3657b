package screen

import "fmt"

// ChoiceView is one rendered choice.
type ChoiceView struct {
	Text        string
	Highlighted bool
}

// View is everything the renderer needs to draw a frame.
type View struct {
	State   State
	Title   string
	Prompt  string
	Choices []ChoiceView
	Notice  string
}

// Render describes the current screen.
func (s *Screen) Render() View {
	choices := make([]ChoiceView, 0, len(s.Question.Choices))
	for i, choice := range s.Question.Choices {
		choices = append(choices, ChoiceView{Text: choice.Text, Highlighted: i == s.Question.Index})
	}
	return View{
		State:   s.State,
		Title:   Title(s.Score.Value),
		Prompt:  s.Question.Prompt,
		Choices: choices,
		Notice:  s.Notice,
	}
}

// Title formats the title bar for a score.
func Title(score int) string {
	return fmt.Sprintf(" %s -------- %d ", GameName, score)
}
