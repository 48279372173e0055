/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		commit   string
		dirty    bool
		expected string
	}{
		{"tag and commit", "v1.0.0", "abc1234def", false, "v1.0.0-abc1234"},
		{"dirty", "v1.0.0", "abc1234def", true, "v1.0.0-abc1234-dirty"},
		{"tag already has commit", "v1.0.0-abc1234", "abc1234def", false, "v1.0.0-abc1234"},
		{"short commit", "v0.1.0", "abc", false, "v0.1.0-abc"},
		{"no commit", "v0.1.0", "", false, "v0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describe(tt.tag, tt.commit, tt.dirty))
		})
	}
}

func TestGet_Ldflags(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v2.3.4"
	assert.Equal(t, "v2.3.4", Get())
	assert.Equal(t, "v2.3.4", Info().Version)
}

func TestFull(t *testing.T) {
	savedVersion, savedCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = savedVersion, savedCommit })

	Version = "v1.0.0"
	GitCommit = unknown
	assert.Equal(t, "v1.0.0", Full())

	GitCommit = "abc1234"
	assert.Equal(t, "v1.0.0 (commit: abc1234)", Full())
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, GitDirty == "dirty", info.Dirty)
}
