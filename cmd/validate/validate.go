/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for brandtokens.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/brandtokens/cmd/project"
	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate brand token files",
	Long: `Validate checks token files for structural problems, unknown layers,
sections naming unregistered brands, and references that do not resolve in
some build context.`,
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

	p, err := project.Load(cmd.Context(), fs.NewOSFileSystem(), args, nil)
	if err != nil {
		return err
	}
	strict = strict || p.Config.Strict

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var findings []validator.ValidationError
	for _, src := range p.Sources {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", src.Path)
		}
		findings = append(findings, validator.ValidateDocument(src.Data, src.Path, p.Registry)...)
	}

	// Reference checks need every document to parse.
	if !validator.HasErrors(findings, false) {
		findings = append(findings, validator.ValidateReferences(p.Sources, p.CompileOptions())...)
	}

	for _, f := range findings {
		if quiet && f.Severity == validator.SeverityWarning && !strict {
			continue
		}
		fmt.Fprintf(errOut, "%s: %s\n", f.Severity, f.Error())
	}

	if validator.HasErrors(findings, strict) {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintf(out, "%d files valid, %d warnings.\n", len(p.Sources), len(findings))
	}
	return nil
}
