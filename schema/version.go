/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema describes how token leaves are spelled in a source document
// and holds the sentinel errors shared by the build stages.
package schema

import "fmt"

// Format is the key spelling used by token leaves.
type Format int

const (
	// Unknown is an undetected spelling.
	Unknown Format = iota

	// TokensStudio leaves use value, type and description.
	TokensStudio

	// DTCG leaves use $value, $type and $description.
	DTCG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TokensStudio:
		return "tokens-studio"
	case DTCG:
		return "dtcg"
	default:
		return "unknown"
	}
}

// ValueKey is the leaf key holding the token value.
func (f Format) ValueKey() string {
	if f == DTCG {
		return "$value"
	}
	return "value"
}

// TypeKey is the key holding the token (or inherited group) type.
func (f Format) TypeKey() string {
	if f == DTCG {
		return "$type"
	}
	return "type"
}

// DescriptionKey is the key holding the token description.
func (f Format) DescriptionKey() string {
	if f == DTCG {
		return "$description"
	}
	return "description"
}

// FromString returns the format for a config or flag value.
func FromString(s string) (Format, error) {
	switch s {
	case "", "auto":
		return Unknown, nil
	case "tokens-studio", "studio", "legacy":
		return TokensStudio, nil
	case "dtcg", "$value":
		return DTCG, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}
