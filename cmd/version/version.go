/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for addonc.
package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/addonc/convert"
	"bennypowers.dev/addonc/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for addonc.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return write(cmd.OutOrStdout(), format)
}

func write(w io.Writer, format string) error {
	if format == "" || format == "text" {
		_, err := fmt.Fprintf(w, "addonc %s\n", version.Full())
		return err
	}

	f, err := convert.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := convert.Encode(version.Info(), f)
	if err != nil {
		return fmt.Errorf("error marshaling version info: %w", err)
	}
	_, err = w.Write(out)
	return err
}
