/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for addonc.
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/addonc/cmd/dump"
	"bennypowers.dev/addonc/cmd/generate"
	"bennypowers.dev/addonc/cmd/link"
	"bennypowers.dev/addonc/cmd/list"
	"bennypowers.dev/addonc/cmd/pack"
	"bennypowers.dev/addonc/cmd/validate"
	"bennypowers.dev/addonc/cmd/version"
	"bennypowers.dev/addonc/internal/logger"
)

// EnvPrefix prefixes environment overrides, e.g. ADDONC_NAME.
const EnvPrefix = "ADDONC"

var rootCmd = &cobra.Command{
	Use:   "addonc",
	Short: "Compile add-on definitions into Blender add-ons",
	Long: `addonc compiles a line-oriented add-on definition (fields, layout and
shortcuts) into a ready-to-install Blender Python add-on.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("name", "n", "", "Add-on name (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Silence warnings and progress output")

	for _, key := range []string{"name", "verbose", "quiet"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(dump.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(link.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(pack.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
