package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"encard/internal/screen"
)

const (
	colorTitle     = lipgloss.Color("33")
	colorHighlight = lipgloss.Color("12")
	colorNotice    = lipgloss.Color("220")
	colorMuted     = lipgloss.Color("244")
)

// renderView lays out the question box on the top half and the choices below.
func renderView(view screen.View, width, height int, noColor bool) string {
	boxHeight := max(height/2-2, 3)
	sections := []string{
		renderTitle(view.Title, width, noColor),
		renderPrompt(view.Prompt, width, boxHeight, noColor),
		renderChoices(view.Choices, width, noColor),
	}
	if view.Notice != "" {
		sections = append(sections, renderNotice(view.Notice, width, noColor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitle renders the game name and score line.
func renderTitle(title string, width int, noColor bool) string {
	style := lipgloss.NewStyle()
	if !noColor {
		style = style.Bold(true).Foreground(colorTitle)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(strings.TrimSpace(title)))
}

// renderPrompt renders the question text centered inside a rounded box.
func renderPrompt(prompt string, width, height int, noColor bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(max(width-2, 1)).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	if !noColor {
		style = style.BorderForeground(colorMuted)
	}
	return style.Render(prompt)
}

// renderChoices renders one centered line per choice with the selection highlighted.
func renderChoices(choices []screen.ChoiceView, width int, noColor bool) string {
	lines := make([]string, 0, len(choices)*2)
	for _, choice := range choices {
		lines = append(lines, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, renderChoice(choice, noColor)))
	}
	return strings.Join(lines, "\n")
}

// renderChoice styles a single choice.
func renderChoice(choice screen.ChoiceView, noColor bool) string {
	if !choice.Highlighted {
		return choice.Text
	}
	if noColor {
		return "> " + choice.Text + " <"
	}
	return lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).Render(choice.Text)
}

// renderNotice renders the footer notice.
func renderNotice(notice string, width int, noColor bool) string {
	text := "\n" + notice
	if noColor {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Foreground(colorNotice).Render(text))
}
