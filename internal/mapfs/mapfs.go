/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem on top of fstest.MapFS.
// Paths are stored without their leading slash.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	links   map[string]string
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files:   make(fstest.MapFS),
		links:   make(map[string]string),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file.
func (m *MapFileSystem) AddFile(p, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: m.modTime}
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if dir := path.Dir(name); dir != "." {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
		}
	}
	m.files[name] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: m.modTime}
	return nil
}

// MkdirAll records directories as explicit MapFS entries.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := clean(p); dir != "." && dir != ""; dir = path.Dir(dir) {
		if f, ok := m.files[dir]; ok {
			if !f.Mode.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: fs.ErrExist}
			}
			continue
		}
		m.files[dir] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: m.modTime}
	}
	return nil
}

func (m *MapFileSystem) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	newname = clean(newname)
	if _, ok := m.links[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	if _, ok := m.files[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	m.links[newname] = oldname
	return nil
}

// Link returns the target of a symlink created with Symlink.
func (m *MapFileSystem) Link(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	target, ok := m.links[clean(name)]
	return target, ok
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

func (m *MapFileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	if _, ok := m.links[p]; ok {
		return true
	}
	_, err := fs.Stat(m.files, p)
	return err == nil
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

// Files lists the regular files, sorted.
func (m *MapFileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	for name, f := range m.files {
		if !f.Mode.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func clean(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
