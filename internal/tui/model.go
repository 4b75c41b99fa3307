// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tiptime/internal/i18n"
	"github.com/toeirei/tiptime/internal/logging"
	"github.com/toeirei/tiptime/internal/tip"
)

// Focus order on the screen.
const (
	focusAmount = iota
	focusPercent
	focusRoundUp
	focusCount
)

const fieldWidth = 24

// inputLimit keeps the product of both fields within exact formatting range.
const inputLimit = 18

// numericRunes are the characters a numeric keyboard can produce.
const numericRunes = "0123456789.,-"

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// clipboardMsg reports the outcome of a copy request.
type clipboardMsg struct {
	text string
	err  error
}

type model struct {
	inputs  [focusRoundUp]textinput.Model // bill amount, tip percentage
	focus   int
	roundUp bool

	calc *tip.Calculator
	keys keyMap
	help help.Model

	status    string
	statusErr bool
}

func newModel(calc *tip.Calculator, opts Options) model {
	m := model{
		calc:    calc,
		roundUp: opts.RoundUp,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	prompts := [focusRoundUp]string{"¤ ", "% "}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = prompts[i]
		ti.Placeholder = "0"
		ti.CharLimit = inputLimit
		ti.Width = fieldWidth
		m.inputs[i] = ti
	}
	m.setFocus(focusAmount)
	return m
}

// Init starts the cursor blinking.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// input is the screen state as seen by the calculator.
func (m model) input() tip.Input {
	return tip.Input{
		Amount:  m.inputs[focusAmount].Value(),
		Percent: m.inputs[focusPercent].Value(),
		RoundUp: m.roundUp,
	}
}

// result is recomputed from scratch on every call.
func (m model) result() string {
	return m.calc.Evaluate(m.input())
}

// setFocus moves focus to i, wrapping around, and returns the cursor command
// of a newly focused text field.
func (m *model) setFocus(i int) tea.Cmd {
	m.focus = (i%focusCount + focusCount) % focusCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = blurredStyle
		m.inputs[j].TextStyle = lipgloss.NewStyle()
	}
	return cmd
}

// Update handles key presses and clipboard results.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			logging.Warnf("clipboard copy failed: %v", msg.err)
			m.status = i18n.T("screen.copy_failed", msg.err)
			m.statusErr = true
		} else {
			m.status = i18n.T("screen.copied", msg.text)
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Toggle):
			m.roundUp = !m.roundUp
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, copyCmd(m.result())
		}

		if m.focus == focusRoundUp {
			switch msg.String() {
			case " ", "enter":
				m.roundUp = !m.roundUp
			}
			return m, nil
		}

		if msg.String() == "enter" {
			return m, m.setFocus(m.focus + 1)
		}

		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			runes := filterNumeric(msg.Runes)
			if len(runes) == 0 {
				return m, nil
			}
			msg.Type = tea.KeyRunes
			msg.Runes = runes
		}
		m.status = ""
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.focus < focusRoundUp {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func filterNumeric(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if strings.ContainsRune(numericRunes, r) {
			out = append(out, r)
		}
	}
	return out
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: writeClipboard(text)}
	}
}

// View renders the screen.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("screen.title")))
	b.WriteString("\n")

	labels := [focusRoundUp]string{i18n.T("screen.bill_amount"), i18n.T("screen.tip_percentage")}
	for i := range m.inputs {
		label, field := labelStyle, fieldStyle
		if m.focus == i {
			label, field = focusedLabelStyle, focusedFieldStyle
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(field.Width(fieldWidth + 6).Render(m.inputs[i].View()))
		b.WriteString("\n")
	}

	b.WriteString(m.switchRow())
	b.WriteString("\n")
	b.WriteString(resultStyle.Render(i18n.T("screen.tip_amount", m.result())))
	b.WriteString("\n")

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m model) switchRow() string {
	label := labelStyle
	if m.focus == focusRoundUp {
		label = focusedLabelStyle
	}
	thumb := switchOffStyle.Render(i18n.T("screen.switch_off"))
	if m.roundUp {
		thumb = switchOnStyle.Render(i18n.T("screen.switch_on"))
	}
	return alignRow(label.Render(i18n.T("screen.round_up")), thumb, fieldWidth+8)
}
