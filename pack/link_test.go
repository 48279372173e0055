/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/addonc/internal/mapfs"
	"bennypowers.dev/addonc/pack"
)

func TestLink(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/bevel/__init__.py", "", 0644)
	require.NoError(t, mfs.MkdirAll("/blender/addons", 0755))

	link, err := pack.Link(mfs, "/work/bevel", "/blender/addons")
	require.NoError(t, err)
	assert.Equal(t, "/blender/addons/bevel", link)

	target, ok := mfs.Link(link)
	require.True(t, ok)
	assert.Equal(t, "/work/bevel", target)

	_, err = pack.Link(mfs, "/work/bevel", "/blender/addons")
	assert.ErrorIs(t, err, pack.ErrLinkExists)
}

func TestLink_MissingSource(t *testing.T) {
	mfs := mapfs.New()

	_, err := pack.Link(mfs, "/work/ghost", "/blender/addons")
	assert.ErrorIs(t, err, pack.ErrMissingSource)
}

func TestLink_ExistingFolder(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/bevel/__init__.py", "", 0644)
	mfs.AddFile("/blender/addons/bevel/__init__.py", "old", 0644)

	_, err := pack.Link(mfs, "/work/bevel", "/blender/addons")
	assert.ErrorIs(t, err, pack.ErrLinkExists)
}
