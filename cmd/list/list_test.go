/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/addonc/parser"
	"bennypowers.dev/addonc/testutil"
)

func bevelRows(t *testing.T) []Row {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "definitions", "/defs")
	result, err := parser.ParseFile(mfs, "/defs/bevel.addon", parser.Options{})
	if err != nil {
		t.Fatalf("failed to parse bevel.addon: %v", err)
	}
	return definitionRows("/defs/bevel.addon", result.Definition)
}

func TestDefinitionRows(t *testing.T) {
	rows := bevelRows(t)

	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Section != SectionField || first.ID != "target_count" || first.Kind != "integer" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Detail != "min=0, max=64" {
		t.Errorf("expected field options as detail, got %q", first.Detail)
	}

	command := rows[5]
	if command.Section != SectionCommand || command.ID != "run" || command.Kind != "setup" || command.Detail != "Run" {
		t.Errorf("unexpected command row: %+v", command)
	}

	last := rows[len(rows)-1]
	if last.Section != SectionShortcut || last.ID != "oskey-LEFT_ARROW" || last.Kind != "named" {
		t.Errorf("unexpected shortcut row: %+v", last)
	}

	for _, row := range rows {
		if row.File != "/defs/bevel.addon" {
			t.Errorf("expected file on every row, got %q", row.File)
		}
	}
}

func TestFilterRows(t *testing.T) {
	rows := bevelRows(t)

	t.Run("no filter", func(t *testing.T) {
		result, err := filterRows(rows, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result) != len(rows) {
			t.Errorf("expected %d rows, got %d", len(rows), len(result))
		}
	})

	cases := []struct {
		section string
		want    string
		count   int
	}{
		{"field", SectionField, 5},
		{"commands", SectionCommand, 4},
		{"Shortcut", SectionShortcut, 3},
	}
	for _, tc := range cases {
		t.Run(tc.section, func(t *testing.T) {
			result, err := filterRows(rows, tc.section)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != tc.count {
				t.Errorf("expected %d rows, got %d", tc.count, len(result))
			}
			for _, row := range result {
				if row.Section != tc.want {
					t.Errorf("expected section %s, got %s", tc.want, row.Section)
				}
			}
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		if _, err := filterRows(rows, "panel"); err == nil {
			t.Error("expected error for unknown section")
		}
	})
}

func TestOutput(t *testing.T) {
	rows := bevelRows(t)

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, rows, "table"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != len(rows) {
			t.Fatalf("expected %d lines, got %d", len(rows), len(lines))
		}
		if !strings.HasPrefix(lines[1], "field      enabled") {
			t.Errorf("unexpected table line: %q", lines[1])
		}
		if !strings.HasSuffix(lines[1], " -") {
			t.Errorf("expected placeholder for empty detail, got %q", lines[1])
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, rows, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded []Row
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(decoded) != len(rows) || decoded[0].ID != "target_count" {
			t.Errorf("unexpected decoded rows: %+v", decoded)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, rows[:1], "yaml"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "id: target_count") {
			t.Errorf("unexpected yaml: %s", buf.String())
		}
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, nil, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := output(&bytes.Buffer{}, rows, "css"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
