package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"encard/internal/screen"
)

// keyMap binds keys to screen actions.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// actionForKey maps a key press to a screen action. Unbound keys map to ActionNone.
func actionForKey(keys keyMap, msg tea.KeyMsg) screen.Action {
	switch {
	case key.Matches(msg, keys.Quit):
		return screen.ActionQuit
	case key.Matches(msg, keys.Up):
		return screen.ActionMoveUp
	case key.Matches(msg, keys.Down):
		return screen.ActionMoveDown
	case key.Matches(msg, keys.Confirm):
		return screen.ActionConfirm
	default:
		return screen.ActionNone
	}
}
