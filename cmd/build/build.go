/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for brandtokens.
package build

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/brandtokens/build"
	"bennypowers.dev/brandtokens/cmd/project"
	"bennypowers.dev/brandtokens/fs"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Write CSS variable files for every brand",
	Long: `Build runs one pass for the primitives, one per brand, and one for
responsive overrides, writing CSS custom property files to the build path.

A failing pass is reported and the remaining passes still run. The command
exits non-zero only with --fail-on-error.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output directory (default: buildPath from config)")
	Cmd.Flags().StringArray("brand", nil, "Brand identifier to build (repeatable, default: brands from config)")
	Cmd.Flags().Bool("strict", false, "Fail a pass on unresolved references")
	Cmd.Flags().Bool("fail-on-error", false, "Exit non-zero when any pass fails")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	brands, _ := cmd.Flags().GetStringArray("brand")
	strict, _ := cmd.Flags().GetBool("strict")
	failOnError, _ := cmd.Flags().GetBool("fail-on-error")

	filesystem := fs.NewOSFileSystem()
	p, err := project.Load(cmd.Context(), filesystem, args, brands)
	if err != nil {
		return err
	}

	opts := p.BuildOptions(filesystem)
	if output != "" {
		abs, err := filepath.Abs(output)
		if err != nil {
			return fmt.Errorf("failed to resolve output path: %w", err)
		}
		opts.BuildPath = abs
	}
	opts.Strict = opts.Strict || strict

	report := build.New(opts).Run(p.Sources)

	out := cmd.OutOrStdout()
	for _, line := range build.Describe(report) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%d files written to %s\n", len(report.Written()), opts.BuildPath)

	if err := report.Err(); err != nil && failOnError {
		return fmt.Errorf("%d of %d passes failed", len(report.Failed()), len(report.Passes))
	}
	return nil
}
