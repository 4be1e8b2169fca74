/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"regexp"
	"strings"

	"bennypowers.dev/brandtokens/token"
)

// DefaultCategories are the reference prefixes that no longer exist once
// sections are merged into one tree.
var DefaultCategories = []string{
	"Colour", "Brand", "Alias", "Font", "Scale", "Surface", "Text", "Icon", "Border",
}

// DefaultPhrases are removed from references after category stripping.
// They come from nested typography paths such as
// {Font.Brand.BrandA.Font family.Heading}.
var DefaultPhrases = []string{"Font family.", "Font weight."}

// Rewriter normalizes {...} references so they point into the merged tree.
type Rewriter struct {
	categories []string
	phrases    []*regexp.Regexp
}

// NewRewriter creates a rewriter. Nil vocabularies use the defaults.
func NewRewriter(categories, phrases []string) *Rewriter {
	if categories == nil {
		categories = DefaultCategories
	}
	if phrases == nil {
		phrases = DefaultPhrases
	}
	r := &Rewriter{categories: categories}
	for _, p := range phrases {
		r.phrases = append(r.phrases, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return r
}

// RewriteReference normalizes a reference path without its braces.
//
// Leading category prefixes are stripped and phrases removed until
// neither changes the reference, then spaces become hyphens. Applying it
// to its own output returns that output unchanged.
func (r *Rewriter) RewriteReference(ref string) string {
	for {
		next := r.stripCategories(ref)
		for _, p := range r.phrases {
			next = p.ReplaceAllString(next, "")
		}
		if next == ref {
			break
		}
		ref = next
	}
	return strings.ReplaceAll(ref, " ", "-")
}

func (r *Rewriter) stripCategories(ref string) string {
	for {
		stripped := false
		for _, c := range r.categories {
			if rest, ok := strings.CutPrefix(ref, c+"."); ok {
				ref = rest
				stripped = true
			}
		}
		if !stripped {
			return ref
		}
	}
}

// RewriteValue rewrites every reference in s. Text outside braces is untouched.
func (r *Rewriter) RewriteValue(s string) string {
	if !token.IsCurlyBraceRef(s) {
		return s
	}
	return token.ReplaceRefs(s, func(ref string) string {
		return token.WrapRef(r.RewriteReference(ref))
	})
}

// Key returns the canonical reference for a token path: the form a
// reference to that path takes after rewriting.
func (r *Rewriter) Key(path []string) string {
	return token.WrapRef(r.RewriteReference(strings.Join(path, ".")))
}

// Rewrite normalizes references in every value and $value string of tree,
// in place, and returns tree.
func (r *Rewriter) Rewrite(tree *token.Node) *token.Node {
	tree.Walk(func(path []string, n *token.Node) bool {
		if n.IsObject() {
			return true
		}
		if key := path[len(path)-1]; key != "value" && key != "$value" {
			return false
		}
		switch v := n.Value().(type) {
		case string:
			n.SetValue(r.RewriteValue(v))
		case []any:
			out := make([]any, len(v))
			for i, item := range v {
				if s, ok := item.(string); ok {
					out[i] = r.RewriteValue(s)
				} else {
					out[i] = item
				}
			}
			n.SetValue(out)
		}
		return false
	})
	return tree
}
