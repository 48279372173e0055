/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for addonc.
package list

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/config"
	"bennypowers.dev/addonc/convert"
	"bennypowers.dev/addonc/fs"
	"bennypowers.dev/addonc/internal/logger"
	"bennypowers.dev/addonc/parser"
)

// Sections that can be listed.
const (
	SectionField    = "field"
	SectionCommand  = "command"
	SectionShortcut = "shortcut"
)

// Row is one listed entry of a definition.
type Row struct {
	File    string `json:"file" yaml:"file"`
	Section string `json:"section" yaml:"section"`
	ID      string `json:"id" yaml:"id"`
	Kind    string `json:"kind" yaml:"kind"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List fields, commands and shortcuts of add-on definitions",
	Long: `List the fields, commands and shortcuts declared by add-on definition files.
If no files are given, the files from .config/addonc.yaml are used.`,
	RunE: run,
}

func init() {
	Cmd.Flags().String("section", "", "Filter by section: field, command, shortcut")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml")
}

func run(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()

	cfg := config.LoadOrDefault(filesystem, ".")
	files, err := cfg.ResolveFiles(filesystem, ".", args)
	if err != nil {
		return err
	}

	var rows []Row
	for _, file := range files {
		result, err := parser.ParseFile(filesystem, file, parser.Options{})
		if err != nil {
			logger.Error("%v", err)
			continue
		}
		rows = append(rows, definitionRows(file, result.Definition)...)
	}

	rows, err = filterRows(rows, section)
	if err != nil {
		return err
	}

	return output(cmd.OutOrStdout(), rows, format)
}

// definitionRows flattens a definition in declaration order.
func definitionRows(file string, def *addon.Definition) []Row {
	var rows []Row
	for _, f := range def.Fields {
		rows = append(rows, Row{
			File:    file,
			Section: SectionField,
			ID:      f.ID,
			Kind:    f.Kind.String(),
			Detail:  f.Options,
		})
	}
	for _, g := range def.Groups {
		for _, item := range g.Items {
			rows = append(rows, Row{
				File:    file,
				Section: SectionCommand,
				ID:      item.ID,
				Kind:    g.Name,
				Detail:  item.Label,
			})
		}
	}
	for _, s := range def.Shortcuts {
		rows = append(rows, Row{
			File:    file,
			Section: SectionShortcut,
			ID:      s.String(),
			Kind:    s.Key.Kind.String(),
			Detail:  s.Source,
		})
	}
	return rows
}

func filterRows(rows []Row, section string) ([]Row, error) {
	section = strings.TrimSuffix(strings.ToLower(section), "s")
	switch section {
	case "":
		return rows, nil
	case SectionField, SectionCommand, SectionShortcut:
	default:
		return nil, fmt.Errorf("unknown section: %s (valid: field, command, shortcut)", section)
	}

	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Section == section {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func output(w io.Writer, rows []Row, format string) error {
	if format == "" || format == "table" {
		return outputTable(w, rows)
	}

	f, err := convert.ParseFormat(format)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []Row{}
	}
	data, err := convert.Encode(rows, f)
	if err != nil {
		return fmt.Errorf("error encoding rows: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputTable(w io.Writer, rows []Row) error {
	for _, row := range rows {
		detail := row.Detail
		if detail == "" {
			detail = "-"
		}
		if _, err := fmt.Fprintf(w, "%-10s %-24s %-16s %s\n", row.Section, row.ID, row.Kind, detail); err != nil {
			return err
		}
	}
	return nil
}
