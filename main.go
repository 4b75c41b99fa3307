// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Tiptime.
//
// Usage:
//
//	go run . [flags]
//	./tiptime calc --amount 50 --percent 18
//
// Running without a subcommand launches the interactive calculator.
package main

import (
	"os"

	"github.com/toeirei/tiptime/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
