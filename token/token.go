/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types and the ordered token tree.
package token

import (
	"strings"
)

// Token types with special handling in the transform pipeline.
const (
	TypeColor     = "color"
	TypeDimension = "dimension"
	TypeNumber    = "number"
)

// Token is a design token extracted from a merged token tree.
type Token struct {
	// Path is the token's path in the merged tree (e.g., ["Colour", "Grey", "100"]).
	Path []string `json:"-"`

	// Name is the flattened CSS identifier (e.g., "grey-100").
	Name string `json:"name"`

	// RawValue is the value as authored, after reference rewriting.
	RawValue any `json:"-"`

	// Value is the final CSS value after transforms and reference resolution.
	Value string `json:"value"`

	// Type specifies the type of token (color, dimension, etc.).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Refs are the reference paths found in the raw value, in order.
	Refs []string `json:"-"`

	// Unresolved are the references that did not resolve.
	Unresolved []string `json:"unresolved,omitempty"`

	// ResolutionChain lists the tokens visited while resolving a
	// whole-value reference, nearest first.
	ResolutionChain []string `json:"-"`

	// Source is the file this token was loaded from, if known.
	Source string `json:"-"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--grey-100"
func (t *Token) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	return "--" + t.Name
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// IsAlias reports whether the raw value is exactly one reference.
func (t *Token) IsAlias() bool {
	s, ok := t.RawValue.(string)
	if !ok {
		return false
	}
	ref, ok := ParseWholeRef(s)
	return ok && ref != ""
}

// HasRefs reports whether the raw value contains any reference.
func (t *Token) HasRefs() bool {
	return len(t.Refs) > 0
}
