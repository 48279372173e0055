/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pack

import (
	"errors"
	"fmt"
	"path/filepath"

	addonfs "bennypowers.dev/addonc/fs"
)

var (
	// ErrLinkExists indicates the link path is already taken.
	ErrLinkExists = errors.New("link target already exists")

	// ErrMissingSource indicates the add-on folder to link does not exist.
	ErrMissingSource = errors.New("add-on folder does not exist")
)

// Link symlinks the add-on folder source into targetDir, typically the
// Blender add-ons folder, and returns the link path.
// The link points at the absolute source path.
func Link(filesystem addonfs.FileSystem, source, targetDir string) (string, error) {
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	if !filesystem.Exists(abs) {
		return "", fmt.Errorf("%w: %s", ErrMissingSource, abs)
	}

	link := filepath.Join(targetDir, filepath.Base(abs))
	if filesystem.Exists(link) {
		return "", fmt.Errorf("%w: %s", ErrLinkExists, link)
	}

	if err := filesystem.Symlink(abs, link); err != nil {
		return "", fmt.Errorf("failed to link %s: %w", link, err)
	}
	return link, nil
}
