// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Tiptime using Cobra.
// It wires configuration, translations and the currency formatter, then
// hands off to the interactive screen or to one-shot subcommands. Tip
// arithmetic lives in internal/tip; commands only parse flags and print.
package cli
