// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func withStamp(t *testing.T, commit, dirty, buildTime string, info *debug.BuildInfo) {
	t.Helper()
	savedCommit, savedDirty, savedTime, savedRead := GitCommit, GitDirty, BuildTime, readBuildInfo
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime, readBuildInfo = savedCommit, savedDirty, savedTime, savedRead
	})
	GitCommit, GitDirty, BuildTime = commit, dirty, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestInfoFromLdflags(t *testing.T) {
	withStamp(t, "abc1234", "true", "2026-01-02T03:04:05Z", nil)

	want := "0.1.0-dev (abc1234-dirty, 2026-01-02T03:04:05Z)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestInfoFromBuildInfo(t *testing.T) {
	withStamp(t, "unknown", "false", "unknown", &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "false"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		},
	})

	want := "0.1.0-dev (0123456, 2026-03-04T05:06:07Z)"
	if got := Info(); got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestInfoWithoutAnyStamp(t *testing.T) {
	withStamp(t, "unknown", "false", "unknown", nil)

	if got := Info(); got != "0.1.0-dev (unknown, unknown)" {
		t.Errorf("Info() = %q", got)
	}
}

func TestFull(t *testing.T) {
	withStamp(t, "abc1234", "false", "now", nil)

	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() should start with Info(): %q", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() should include the Go version: %q", full)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
