// Package screen holds the menu and game state machine behind the quiz UI.
package screen

import (
	"math/rand"

	"encard/internal/bank"
	"encard/internal/quiz"
)

// GameName is shown in the title bar.
const GameName = "ENCARD"

// EmptyBankNotice is shown on the menu when no question can be drawn.
const EmptyBankNotice = "No questions available. Add one with `encard add`."

// Menu choice positions.
const (
	MenuPlay = 0
	MenuExit = 1
)

// State identifies the active screen.
type State int

const (
	// StateMenu shows the Play/Exit menu.
	StateMenu State = iota
	// StateGame shows a question from the bank.
	StateGame
	// StateExit is reserved; the entry loop handles quitting.
	StateExit
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Action is an input already mapped from a key.
type Action int

const (
	// ActionNone leaves the screen untouched.
	ActionNone Action = iota
	// ActionMoveUp highlights the previous choice.
	ActionMoveUp
	// ActionMoveDown highlights the next choice.
	ActionMoveDown
	// ActionConfirm selects the highlighted choice.
	ActionConfirm
	// ActionQuit asks the loop to stop.
	ActionQuit
)

// Outcome tells the entry loop whether to keep running.
type Outcome int

const (
	// Continue keeps the loop running.
	Continue Outcome = iota
	// Quit ends the loop and restores the terminal.
	Quit
)

// QuestionSource provides the current question bank.
type QuestionSource interface {
	Load() bank.Bank
}

// Screen is the single owned aggregate driven by the entry loop.
type Screen struct {
	State    State
	Question quiz.Question
	Score    quiz.Score
	Notice   string

	source QuestionSource
	pick   func(n int) int
}

// New returns a screen in the menu state. A nil pick uses math/rand.
func New(source QuestionSource, pick func(n int) int) *Screen {
	if pick == nil {
		pick = rand.Intn
	}
	return &Screen{
		State:    StateMenu,
		Question: MenuQuestion(),
		source:   source,
		pick:     pick,
	}
}

// MenuQuestion returns the synthetic Play/Exit question shown on the menu.
func MenuQuestion() quiz.Question {
	choices := make([]quiz.Choice, 2)
	choices[MenuPlay] = quiz.Choice{Text: "Play"}
	choices[MenuExit] = quiz.Choice{Text: "Exit"}
	return quiz.Question{Prompt: "Welcome to English card game!", Choices: choices}
}

// Apply performs an action and reports whether the loop should continue.
func (s *Screen) Apply(action Action) Outcome {
	switch action {
	case ActionQuit:
		return Quit
	case ActionMoveUp:
		s.Question.MoveSelectionUp()
	case ActionMoveDown:
		s.Question.MoveSelectionDown()
	case ActionConfirm:
		return s.confirm()
	}
	return Continue
}

func (s *Screen) confirm() Outcome {
	switch s.State {
	case StateMenu:
		return s.StartGame()
	case StateGame:
		s.SubmitAnswer()
	}
	return Continue
}

// StartGame leaves the menu. Selecting Play enters the game and draws a question;
// any other selection asks the loop to quit.
func (s *Screen) StartGame() Outcome {
	if s.State != StateMenu {
		return Continue
	}
	if s.Question.Index != MenuPlay {
		return Quit
	}
	s.Notice = ""
	s.State = StateGame
	s.nextQuestion()
	return Continue
}

// SubmitAnswer scores the current selection and draws the next question.
func (s *Screen) SubmitAnswer() {
	if s.State != StateGame {
		return
	}
	if s.Question.CurrentChoiceIsCorrect() {
		s.Score.Increment()
	}
	s.Question.ResetSelection()
	s.nextQuestion()
}

// nextQuestion reloads the bank and picks a question uniformly at random. An empty
// bank sends the player back to the menu with a notice.
func (s *Screen) nextQuestion() {
	var current bank.Bank
	if s.source != nil {
		current = s.source.Load()
	}
	if current.Len() == 0 {
		s.State = StateMenu
		s.Question = MenuQuestion()
		s.Notice = EmptyBankNotice
		return
	}
	next := current.Questions[s.pick(current.Len())].Clone()
	next.ResetSelection()
	s.Question = next
}
