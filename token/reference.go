/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// curlyBracePattern matches {token.path} references.
	curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// wholeRefPattern matches a value that is exactly one reference.
	wholeRefPattern = regexp.MustCompile(`^\s*\{([^{}]+)\}\s*$`)
)

// ParseWholeRef extracts the token path when value consists of a single
// reference and nothing else.
func ParseWholeRef(value string) (string, bool) {
	matches := wholeRefPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// ReplaceRefs calls fn for every reference in value and substitutes the
// returned text for the whole "{...}" expression.
func ReplaceRefs(value string, fn func(ref string) string) string {
	return curlyBracePattern.ReplaceAllStringFunc(value, func(m string) string {
		return fn(m[1 : len(m)-1])
	})
}

// RefSegments splits a dotted reference path into segments.
func RefSegments(ref string) []string {
	return strings.Split(ref, ".")
}

// WrapRef wraps a dotted path in reference braces, e.g. "Grey.100" -> "{Grey.100}".
func WrapRef(ref string) string {
	return "{" + ref + "}"
}
