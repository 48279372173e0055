/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dump provides the dump command for addonc.
package dump

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/addonc/convert"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	"bennypowers.dev/addonc/parser"
)

// Cmd is the dump cobra command.
var Cmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the compiled add-on definition",
	Long: `Parse an add-on definition and print its intermediate representation.

Examples:
  addonc dump bevel.addon
  addonc dump --format yaml bevel.addon`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "json", "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")

	format, err := convert.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	out, err := dumpFile(fs.NewOSFileSystem(), args[0], format, strict)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func dumpFile(filesystem fs.FileSystem, file string, format convert.Format, strict bool) ([]byte, error) {
	result, err := parser.ParseFile(filesystem, file, parser.Options{Strict: strict})
	if err != nil {
		return nil, err
	}

	for _, w := range result.Warnings {
		logger.Warn("%s: %s", file, w)
	}

	out, err := convert.Encode(result.Definition, format)
	if err != nil {
		return nil, fmt.Errorf("error formatting output: %w", err)
	}
	return out, nil
}
