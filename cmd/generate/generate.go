/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for addonc.
package generate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/addonc/config"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	"bennypowers.dev/addonc/parser"
	"bennypowers.dev/addonc/render"
)

// ErrNameForManyFiles indicates --name was given while generating several add-ons.
var ErrNameForManyFiles = errors.New("--name applies to a single definition file")

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate Blender add-ons from definition files",
	Long: `Compile add-on definitions and write one Python package per definition.

Each add-on is written to <output>/<module>, where module is derived from the
add-on name ("Bevel Helper" becomes bevel_helper).

Examples:
  # Generate with an explicit name
  addonc generate --name "Bevel Helper" bevel.addon

  # Generate every file listed in .config/addonc.yaml
  addonc generate

  # Show which files would be written
  addonc generate --dry-run bevel.addon`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output directory (default: config output or .)")
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("dry-run", false, "List generated files without writing them")
}

type options struct {
	output string
	name   string
	strict bool
	dryRun bool
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	strict, _ := cmd.Flags().GetBool("strict")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	if output == "" {
		output = cfg.Output
	}

	files, err := cfg.ResolveFiles(filesystem, ".", args)
	if err != nil {
		return err
	}

	// Get name from viper (CLI flag or ADDONC_NAME)
	name := viper.GetString("name")
	if name != "" && len(files) > 1 {
		return ErrNameForManyFiles
	}

	opts := options{output: output, name: name, strict: strict, dryRun: dryRun}

	var failures int
	for _, file := range files {
		dir, written, err := generateFile(filesystem, cfg, file, opts)
		if err != nil {
			logger.Error("%v", err)
			failures++
			continue
		}
		for _, f := range written {
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, f.Path))
			} else {
				logger.Debug("wrote %s", filepath.Join(dir, f.Path))
			}
		}
		if !dryRun {
			logger.Info("Generated %s from %s", dir, file)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d add-ons failed to generate", failures, len(files))
	}
	return nil
}

// generateFile compiles one definition and writes its add-on folder,
// returning the folder and the files rendered into it.
func generateFile(filesystem fs.FileSystem, cfg *config.Config, file string, opts options) (string, []render.File, error) {
	result, err := parser.ParseFile(filesystem, file, parser.Options{Strict: opts.strict})
	if err != nil {
		return "", nil, err
	}
	for _, w := range result.Warnings {
		logger.Warn("%s: %s", file, w)
	}

	renderOpts := cfg.OptionsForFile(file)
	if opts.name != "" {
		renderOpts.Name = opts.name
	}

	module, err := render.ModuleName(renderOpts.Name)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", file, err)
	}

	files, err := render.Render(result.Definition, renderOpts)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", file, err)
	}

	dir := filepath.Join(opts.output, module)
	if opts.dryRun {
		return dir, files, nil
	}
	if err := render.Write(filesystem, dir, files); err != nil {
		return "", nil, err
	}
	return dir, files, nil
}
