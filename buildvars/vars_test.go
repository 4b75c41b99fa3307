// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v1.4.0"
	if got := VersionOrDefault("dev"); got != "v1.4.0" {
		t.Fatalf("expected linked version, got %q", got)
	}
}
