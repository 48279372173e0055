/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pack distributes generated add-ons: zip archives for installation
// and symlinks for development.
package pack

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	addonfs "bennypowers.dev/addonc/fs"
)

// ErrEmptyArchive indicates no file under the add-on folder was eligible.
var ErrEmptyArchive = errors.New("no files to archive")

// TimestampLayout is the archive name suffix layout.
const TimestampLayout = "20060102150405"

// DefaultExtensions are the file extensions archived when none are configured.
var DefaultExtensions = []string{".py", ".blend", ".svg"}

// ArchiveOptions configures Archive.
type ArchiveOptions struct {
	// Extensions selects files by extension. Empty means DefaultExtensions.
	Extensions []string

	// Exclude holds doublestar patterns, matched against slash paths
	// relative to the add-on folder.
	Exclude []string

	// Now stamps the archive name. Defaults to time.Now.
	Now func() time.Time
}

// Archive zips the add-on folder dir into <dir>-<timestamp>.zip next to it
// and returns the archive path. Entries are stored under the folder's base name
// so the archive installs as a single add-on package.
func Archive(filesystem addonfs.FileSystem, dir string, opts ArchiveOptions) (string, error) {
	dir = filepath.Clean(dir)
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return "", fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	root := filepath.Base(dir)
	count := 0

	err := fs.WalkDir(filesystem, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !hasExtension(rel, extensions) || excluded(rel, opts.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := filesystem.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", p, err)
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     path.Join(root, rel),
			Method:   zip.Deflate,
			Modified: info.ModTime(),
		})
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", dir, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", dir, err)
	}
	if count == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyArchive, dir)
	}

	archivePath := dir + "-" + now().Format(TimestampLayout) + ".zip"
	if err := filesystem.WriteFile(archivePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", archivePath, err)
	}
	return archivePath, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := path.Ext(name)
	return ext != "" && slices.Contains(extensions, ext)
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
