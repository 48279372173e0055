/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package link provides the link command for addonc.
package link

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/addonc/config"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	"bennypowers.dev/addonc/pack"
)

// ErrNoTarget indicates no add-ons folder was given or configured.
var ErrNoTarget = errors.New("no add-ons folder: set --target or link in .config/addonc.yaml")

// Cmd is the link cobra command.
var Cmd = &cobra.Command{
	Use:   "link [dir]",
	Short: "Symlink a generated add-on into Blender's add-ons folder",
	Long: `Symlink a generated add-on folder into Blender's add-ons folder, so
regenerating updates the installed add-on in place.

Examples:
  addonc link --name "Bevel Helper" --target ~/.config/blender/4.1/scripts/addons
  addonc link build/bevel_helper`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("target", "t", "", "Blender add-ons folder (default: config link)")
}

func run(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	link, err := linkAddon(filesystem, cfg, dir, viper.GetString("name"), target)
	if err != nil {
		return err
	}

	logger.Info("Linked %s", link)
	return nil
}

func linkAddon(filesystem fs.FileSystem, cfg *config.Config, dir, name, target string) (string, error) {
	if target == "" {
		target = cfg.Link
	}
	if target == "" {
		return "", ErrNoTarget
	}

	if dir == "" {
		var err error
		if dir, err = cfg.AddonDir(name); err != nil {
			return "", err
		}
	}

	return pack.Link(filesystem, dir, target)
}
