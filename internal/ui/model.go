package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"encard/internal/screen"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
)

// Model renders a quiz screen using Bubble Tea.
type Model struct {
	screen  *screen.Screen
	keys    keyMap
	help    help.Model
	width   int
	height  int
	noColor bool
	logger  *zap.Logger
}

// NewModel constructs a UI model around a screen.
func NewModel(s *screen.Screen, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := help.New()
	h.Width = defaultWidth
	return Model{
		screen:  s,
		keys:    defaultKeyMap(),
		help:    h,
		width:   defaultWidth,
		height:  defaultHeight,
		noColor: opts.NoColor,
		logger:  logger,
	}
}

// Init has nothing to start; the model only reacts to input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies key presses to the screen and tracks the window size.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(typed.Width, 1)
		m.height = max(typed.Height, 1)
		m.help.Width = m.width
		return m, nil
	case tea.KeyMsg:
		action := actionForKey(m.keys, typed)
		if action == screen.ActionNone {
			return m, nil
		}
		before := m.screen.State
		outcome := m.screen.Apply(action)
		if after := m.screen.State; after != before {
			m.logger.Debug("screen state changed",
				zap.Stringer("from", before),
				zap.Stringer("to", after),
				zap.Int("score", m.screen.Score.Value),
			)
		}
		if outcome == screen.Quit {
			m.logger.Info("quiz finished", zap.Int("score", m.screen.Score.Value))
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	return renderView(m.screen.Render(), m.width, m.height, m.noColor) + "\n" + m.help.View(m.keys)
}
