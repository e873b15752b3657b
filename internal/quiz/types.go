package quiz

// Choice is a single answer option of a question.
type Choice struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question represents a prompt with ordered answer choices and the current selection.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string   `json:"question" yaml:"question"`
	Choices []Choice `json:"choices" yaml:"choices"`
	Index   int      `json:"index" yaml:"index"`
}

// Score tracks the number of correctly answered questions in a session.
type Score struct {
	Value int
}
