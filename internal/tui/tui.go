// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the calculator screen. The screen owns only its
// three input values; every render asks the tip package for the result.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tiptime/internal/logging"
	"github.com/toeirei/tiptime/internal/tip"
)

// Options configures a screen instance.
type Options struct {
	// RoundUp is the initial position of the round-up switch.
	RoundUp bool
}

// Run shows the calculator until the user quits.
func Run(calc *tip.Calculator, opts Options) error {
	logging.Debugf("starting screen (round_up=%v)", opts.RoundUp)
	_, err := tea.NewProgram(
		newModel(calc, opts),
		tea.WithAltScreen(),
	).Run()
	return err
}
