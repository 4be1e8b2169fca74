/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for brandtokens.
package list

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"bennypowers.dev/brandtokens/build"
	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/cmd/project"
	"bennypowers.dev/brandtokens/cmd/render"
	"bennypowers.dev/brandtokens/formatter"
	"bennypowers.dev/brandtokens/formatter/css"
	"bennypowers.dev/brandtokens/formatter/flatjson"
	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/token"
)

// Formats lists the supported output formats.
var Formats = []string{"table", "names", "markdown", "json", "css"}

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List the resolved tokens of one build context",
	Long: `List compiles one build context (Primitives, Responsive, or a brand
identifier) and prints its tokens with their resolved values.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("context", "c", "Primitives", "Build context: Primitives, Responsive, or a brand identifier")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, names, markdown, json, css")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("group", "", "Filter by top-level group")
}

// Filter selects tokens by type and top-level group. Empty fields match all.
type Filter struct {
	Type  string
	Group string
}

func run(cmd *cobra.Command, args []string) error {
	contextName, _ := cmd.Flags().GetString("context")
	format, _ := cmd.Flags().GetString("format")
	typeFilter, _ := cmd.Flags().GetString("type")
	groupFilter, _ := cmd.Flags().GetString("group")

	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown format %q, want one of %v", format, Formats)
	}

	p, err := project.Load(cmd.Context(), fs.NewOSFileSystem(), args, nil)
	if err != nil {
		return err
	}
	ctx, err := buildctx.Parse(contextName, p.Registry)
	if err != nil {
		return err
	}

	compiled, err := build.Compile(p.Sources, ctx, p.CompileOptions())
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), compiled, format, Filter{Type: typeFilter, Group: groupFilter})
}

func write(w io.Writer, compiled *build.Compiled, format string, filter Filter) error {
	tokens := filterTokens(compiled.Tokens, filter)

	switch format {
	case "json":
		data, err := flatjson.New().Format(tokens, formatter.Options{})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "css":
		return writeCSS(w, compiled, filter)
	case "names":
		return render.Names(w, render.ComputeRows(tokens))
	case "markdown":
		return render.Markdown(w, render.ComputeRows(tokens))
	default:
		return render.Table(w, render.ComputeRows(tokens), true)
	}
}

// writeCSS prints every file the context would write, as the build
// would write it.
func writeCSS(w io.Writer, compiled *build.Compiled, filter Filter) error {
	for i, out := range compiled.Outputs {
		data, err := css.New().Format(filterTokens(out.Tokens, filter), compiled.FormatterOptions(out.File))
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "/* %s */\n", out.File.Destination)
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func filterTokens(tokens []*token.Token, filter Filter) []*token.Token {
	if filter.Type == "" && filter.Group == "" {
		return tokens
	}
	result := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if filter.Type != "" && tok.Type != filter.Type {
			continue
		}
		if filter.Group != "" && (len(tok.Path) == 0 || tok.Path[0] != filter.Group) {
			continue
		}
		result = append(result, tok)
	}
	return result
}
