package ui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"encard/internal/screen"
)

// Options configures the quiz UI.
type Options struct {
	NoColor bool
	Logger  *zap.Logger
	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run drives the screen until the player quits. Bubble Tea owns raw mode and the
// alternate screen for the duration and restores the terminal on every exit path.
func Run(s *screen.Screen, opts Options) error {
	program := tea.NewProgram(NewModel(s, opts), programOptions(opts)...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return nil
}

// programOptions builds Bubble Tea options for the given UI options.
func programOptions(opts Options) []tea.ProgramOption {
	options := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		options = append(options, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		options = append(options, tea.WithOutput(opts.Output))
	}
	return options
}
