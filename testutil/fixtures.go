/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for addonc.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/addonc/internal/mapfs"
)

// fixtureRoots are tried in order since go test runs in the package directory.
var fixtureRoots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// NewFixtureFS loads a fixture directory from testdata into a MapFileSystem,
// mounted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath := ""
	for _, root := range fixtureRoots {
		candidate := filepath.Join(root, fixtureDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			fixturePath = candidate
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, rel)), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, root := range fixtureRoots {
		content, err := os.ReadFile(filepath.Join(root, fixturePath))
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}
