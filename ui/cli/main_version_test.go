// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"testing"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/tiptime", Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_LinkerVarsForDevelBuilds(t *testing.T) {
	origVersion, origCommit, origDate := version, gitCommit, buildDate
	defer func() { version, gitCommit, buildDate = origVersion, origCommit, origDate }()
	version, gitCommit, buildDate = "v0.4.0", "8a1f3c2", "2026-10-01T12:00:00Z"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/tiptime", Version: "(devel)"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v0.4.0" || c != "8a1f3c2" || d != "2026-10-01T12:00:00Z" {
		t.Fatalf("expected linker values, got %s/%s/%s", v, c, d)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/tiptime", Version: "v1.0.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc1234"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "abc1234" || d != "2026-10-01T12:00:00Z" {
		t.Fatalf("expected VCS settings, got commit=%s date=%s", c, d)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/tiptime", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}
