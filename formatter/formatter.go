/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"strings"

	"bennypowers.dev/brandtokens/token"
	"bennypowers.dev/brandtokens/transform"
)

// Header marks generated files.
const Header = "/**\n * Do not edit directly, this file was generated by brandtokens.\n */\n\n"

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Selector is the CSS selector variables are declared under.
	// Zero value means ":root".
	Selector string

	// OutputReferences emits references as var() instead of resolved values.
	OutputReferences bool

	// RefName returns the flat name a reference in from's value points at.
	// Nil flattens the reference path.
	RefName func(from *token.Token, ref string) string
}

// EmittedValue returns the value written for tok: its resolved value, or
// with OutputReferences, its raw value with each reference replaced by a
// var() of the referenced variable.
func EmittedValue(tok *token.Token, opts Options) string {
	if !opts.OutputReferences || !tok.HasRefs() {
		return tok.Value
	}

	refName := opts.RefName
	if refName == nil {
		refName = func(_ *token.Token, ref string) string {
			return transform.FlattenRef(ref, nil)
		}
	}
	toVar := func(s string) string {
		return token.ReplaceRefs(s, func(ref string) string {
			return "var(--" + refName(tok, ref) + ")"
		})
	}

	switch raw := tok.RawValue.(type) {
	case string:
		return toVar(raw)
	case []any:
		parts := make([]string, len(raw))
		for i, item := range raw {
			if s, ok := item.(string); ok {
				parts[i] = toVar(s)
			} else {
				parts[i] = transform.Format(item)
			}
		}
		return strings.Join(parts, ", ")
	}
	return tok.Value
}
