// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used on the screen.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorDarkGray  = lipgloss.Color("238")
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 4)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtle)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	focusedStyle = lipgloss.NewStyle().Foreground(colorHighlight)
	blurredStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			MarginBottom(1)
	focusedFieldStyle = fieldStyle.
				BorderForeground(colorHighlight)

	// Round-up switch: green thumb when on, dark gray when off.
	switchOnStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorSuccess).
			Bold(true).
			Padding(0, 1)
	switchOffStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorDarkGray).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)
