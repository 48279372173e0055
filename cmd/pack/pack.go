/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pack provides the pack command for addonc.
package pack

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/addonc/config"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	packlib "bennypowers.dev/addonc/pack"
)

// Cmd is the pack cobra command.
var Cmd = &cobra.Command{
	Use:   "pack [dir]",
	Short: "Zip a generated add-on for installation",
	Long: `Zip a generated add-on folder into <dir>-<timestamp>.zip, ready to install
from Blender's preferences. Without a folder argument, the folder generated
for --name (or the configured name) is packed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringSlice("ext", nil, "File extensions to include (default: .py, .blend, .svg)")
	Cmd.Flags().StringArray("exclude", nil, "Doublestar pattern to exclude (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	extensions, _ := cmd.Flags().GetStringSlice("ext")
	exclude, _ := cmd.Flags().GetStringArray("exclude")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else {
		var err error
		if dir, err = cfg.AddonDir(viper.GetString("name")); err != nil {
			return err
		}
	}

	opts := cfg.ArchiveOptions()
	if len(extensions) > 0 {
		opts.Extensions = normalizeExtensions(extensions)
	}
	opts.Exclude = append(opts.Exclude, exclude...)

	archive, err := packlib.Archive(filesystem, dir, opts)
	if err != nil {
		return err
	}

	logger.Info("Packed %s", archive)
	return nil
}

// normalizeExtensions trims and dot-prefixes extensions, so "py" means ".py".
func normalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
