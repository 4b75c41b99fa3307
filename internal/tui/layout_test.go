// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "testing"

func TestAlignRow(t *testing.T) {
	if got := alignRow("ab", "cd", 8); got != "ab    cd" {
		t.Fatalf("unexpected row %q", got)
	}
	if got := alignRow("abcdef", "gh", 4); got != "abcdef gh" {
		t.Fatalf("expected single-space fallback, got %q", got)
	}
	if got := alignRow("\x1b[1mab\x1b[0m", "cd", 6); got != "\x1b[1mab\x1b[0m  cd" {
		t.Fatalf("expected escape sequences ignored when measuring, got %q", got)
	}
}
