/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for brandtokens.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/brandtokens/cmd/build"
	"bennypowers.dev/brandtokens/cmd/list"
	"bennypowers.dev/brandtokens/cmd/project"
	"bennypowers.dev/brandtokens/cmd/validate"
	"bennypowers.dev/brandtokens/cmd/version"
	"bennypowers.dev/brandtokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "brandtokens",
	Short: "Compile multi-brand design tokens to CSS variables",
	Long: `brandtokens compiles layered design token documents (primitives, brand
alias colours, mapped and responsive sections) into one set of CSS custom
property files per brand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if level := viper.GetString(project.KeyLogLevel); level != "" {
			return logger.SetLevel(level)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(project.KeyRoot, ".", "Project root containing .config/brand-tokens.{yaml,json}")
	flags.String(project.KeyLogLevel, "", "Log level: silent, error, warn, info, debug")
	flags.String(project.KeyInputFormat, "", "Force token spelling: tokens-studio, dtcg")

	for _, key := range []string{project.KeyRoot, project.KeyLogLevel, project.KeyInputFormat} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("BRANDTOKENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
