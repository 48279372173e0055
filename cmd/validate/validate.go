/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for addonc.
package validate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/config"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	"bennypowers.dev/addonc/parser"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate add-on definition files",
	Long: `Validate add-on definition files without generating anything.
With no arguments, the files listed in .config/addonc.yaml are validated.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/addonc.{yaml,yml,json,toml}
	cfg := config.LoadOrDefault(filesystem, ".")

	files, err := cfg.ResolveFiles(filesystem, ".", args)
	if err != nil {
		return err
	}

	if !validateFiles(filesystem, files, strict, quiet, cmd.OutOrStdout()) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// validateFiles parses every file, reporting progress to out and problems
// through the logger. It reports whether all files are valid.
func validateFiles(filesystem fs.FileSystem, files []string, strict, quiet bool, out io.Writer) bool {
	valid := true

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		result, err := parser.ParseFile(filesystem, file, parser.Options{Strict: strict})
		if err != nil {
			logger.Error("%v", err)
			if errors.Is(err, addon.ErrUnresolvedFieldType) {
				logger.Info("  known types: %s", knownTypes())
			}
			valid = false
			continue
		}

		for _, w := range result.Warnings {
			logger.Warn("%s: %s", file, w)
		}

		if !quiet {
			def := result.Definition
			fmt.Fprintf(out, "  %d fields, %d commands in %d groups, %d shortcuts\n",
				len(def.Fields), len(def.Commands), len(def.Groups), len(def.Shortcuts))
		}
	}

	if valid && !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return valid
}

func knownTypes() string {
	names := make([]string, 0, len(addon.Kinds()))
	for _, k := range addon.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
