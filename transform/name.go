/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform turns token paths and raw values into CSS names and values.
package transform

import (
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/token"
)

// Scaffolding lists path segments that only structure the source document
// and never appear in variable names.
var Scaffolding = []string{"Primitives", "Default", "Mapped", "Alias colours", "Alias"}

var (
	// decorations are separator glyphs used by design tools: the south-east
	// arrow and the text presentation selector that often follows it.
	decorations = strings.NewReplacer("\u2198", "", "\ufe0e", "")

	separatorPattern = regexp.MustCompile(`[\s/]`)
	invalidPattern   = regexp.MustCompile(`[^\p{L}\p{N}-]`)
	dashRunPattern   = regexp.MustCompile(`-+`)
)

// FlattenName converts a token path into a CSS custom property suffix.
//
// Scaffolding segments and registered brand slugs are dropped, the rest
// are joined with "-", decorative glyphs removed, whitespace and "/"
// turned into "-", "%" stripped, and the result lowercased with runs of
// "-" collapsed. Every other character that is not a letter or digit,
// "_" included, becomes "-".
func FlattenName(path []string, registry *brand.Registry) string {
	var drop []string
	if registry != nil {
		drop = registry.Slugs()
	}

	kept := make([]string, 0, len(path))
	for _, seg := range path {
		if slices.Contains(Scaffolding, seg) || slices.Contains(drop, seg) {
			continue
		}
		kept = append(kept, seg)
	}

	name := strings.Join(kept, "-")
	name = decorations.Replace(name)
	name = separatorPattern.ReplaceAllString(name, "-")
	name = strings.ReplaceAll(name, "%", "")
	name = strings.ToLower(name)
	name = invalidPattern.ReplaceAllString(name, "-")
	name = dashRunPattern.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

// FlattenRef flattens a dotted reference path the same way as a token path.
func FlattenRef(ref string, registry *brand.Registry) string {
	return FlattenName(token.RefSegments(ref), registry)
}
