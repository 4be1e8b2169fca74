/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package partition plans the output files of a build context and assigns
// tokens to them.
//
// Membership is decided per file and per token, independently. Predicates
// of one context may overlap, in which case a token is written to every
// file it matches.
package partition

import (
	"fmt"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/token"
	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Keyword sets of the brand files.
var (
	AliasKeywords  = []string{"Primary", "Secondary", "Tertiary", "Neutral", "Accent", "Positive", "Error", "Warning", "Information"}
	MappedKeywords = []string{"Surface", "Text", "Icon", "Border"}

	// PrimitiveCategories are the first segments of primitive tokens,
	// excluded from the responsive file.
	PrimitiveCategories = []string{"Colour", "Font", "Scale"}
)

// RootSelector scopes global files.
const RootSelector = ":root"

// File describes one output file.
type File struct {
	// Destination is the file name relative to the build path.
	Destination string

	// Match decides which tokens the file holds.
	Match Matcher

	// OutputReferences emits references as var() instead of literal values.
	OutputReferences bool

	// Selector is the CSS selector the variables are declared under.
	Selector string
}

// ThemeSelector returns the selector for a brand slug.
func ThemeSelector(slug string) string {
	return fmt.Sprintf(`[data-theme="%s"]`, slug)
}

// PlanFor returns the files produced for ctx.
func PlanFor(ctx buildctx.Context, registry *brand.Registry) []File {
	switch ctx.Kind {
	case buildctx.Primitives:
		return []File{{
			Destination: "primitives.css",
			Match:       Not(AnyWord("Brand")),
			Selector:    RootSelector,
		}}
	case buildctx.Responsive:
		return []File{{
			Destination:      "responsive.css",
			Match:            FirstNotIn(PrimitiveCategories...),
			OutputReferences: true,
			Selector:         RootSelector,
		}}
	}

	slug := registry.Slug(ctx.Brand)
	selector := ThemeSelector(slug)
	return []File{
		{
			Destination: slug + ".primitives.css",
			Match:       Sequence(Is("Brand"), Is(ctx.Brand)),
			Selector:    selector,
		},
		{
			Destination:      slug + ".alias.css",
			Match:            AnyWord(AliasKeywords...),
			OutputReferences: true,
			Selector:         selector,
		},
		{
			Destination: slug + ".mapped.css",
			Match: AnyOf(
				AnyWord(MappedKeywords...),
				Sequence(Is("Font"), StartsWithWord("Font")),
			),
			OutputReferences: true,
			Selector:         selector,
		},
	}
}

// Output is a planned file with the tokens assigned to it.
type Output struct {
	File   File
	Tokens []*token.Token
}

// Assign distributes tokens over files, keeping token order. When two
// tokens of one file share a flattened name, the later token replaces
// the earlier one at the earlier position.
func Assign(tokens []*token.Token, files []File) []Output {
	outputs := make([]Output, len(files))
	for i, f := range files {
		byName := linkedhashmap.New[string, *token.Token]()
		for _, t := range tokens {
			if !f.Match.Match(t.Path) {
				continue
			}
			if prev, ok := byName.Get(t.Name); ok {
				logger.Warn("%s: %s and %s both declare --%s; keeping %s",
					f.Destination, prev.DotPath(), t.DotPath(), t.Name, t.DotPath())
			}
			byName.Put(t.Name, t)
		}
		outputs[i] = Output{File: f, Tokens: byName.Values()}
	}
	return outputs
}
