/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
	"bennypowers.dev/brandtokens/transform"
	"go.uber.org/multierr"
)

// UnresolvedReferenceError reports a reference that names no token in
// the merged tree.
type UnresolvedReferenceError struct {
	// Token is the dotted path of the referring token.
	Token string

	// Ref is the reference path, without braces.
	Ref string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference {%s} in %s", e.Ref, e.Token)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return schema.ErrUnresolvedReference
}

// Index finds tokens by reference.
//
// A reference matches a token whose dotted path equals the reference, or
// whose canonical key (the rewritten form of a reference to its path)
// equals the rewritten reference. Exact paths win; among canonical
// matches the first token in tree order wins.
type Index struct {
	rewriter  *Rewriter
	exact     map[string]*token.Token
	canonical map[string][]*token.Token
}

// NewIndex indexes tokens. A nil rewriter uses the default vocabularies.
func NewIndex(tokens []*token.Token, rewriter *Rewriter) *Index {
	if rewriter == nil {
		rewriter = NewRewriter(nil, nil)
	}
	ix := &Index{
		rewriter:  rewriter,
		exact:     make(map[string]*token.Token, len(tokens)),
		canonical: make(map[string][]*token.Token, len(tokens)),
	}
	for _, t := range tokens {
		ix.exact[t.DotPath()] = t
		key := rewriter.Key(t.Path)
		ix.canonical[key] = append(ix.canonical[key], t)
	}
	return ix
}

// Lookup returns the token a reference names.
func (ix *Index) Lookup(ref string) (*token.Token, bool) {
	return ix.LookupFrom(nil, ref)
}

// LookupFrom returns the token a reference names, never returning from
// itself for a canonical match.
func (ix *Index) LookupFrom(from *token.Token, ref string) (*token.Token, bool) {
	if t, ok := ix.exact[ref]; ok && t != from {
		return t, true
	}
	canon := ix.rewriter.RewriteReference(ref)
	if t, ok := ix.exact[canon]; ok && t != from {
		return t, true
	}
	for _, t := range ix.canonical[token.WrapRef(canon)] {
		if t != from {
			return t, true
		}
	}
	return nil, false
}

// Options configures resolution.
type Options struct {
	// Rewriter normalizes references for lookup. Nil uses the defaults.
	Rewriter *Rewriter

	// Literal computes the value of a token without references.
	// Nil uses transform.Value.
	Literal func(*token.Token) string
}

// Result is the outcome of resolving one merged tree.
type Result struct {
	Index *Index

	// Unresolved lists references that matched no token, in token order.
	Unresolved []*UnresolvedReferenceError
}

// Err combines every unresolved reference into one error, or nil.
func (r *Result) Err() error {
	var err error
	for _, u := range r.Unresolved {
		err = multierr.Append(err, u)
	}
	return err
}

// Resolve sets Value on every token. Tokens are resolved in dependency
// order, so a whole-value reference takes the target's final value,
// including unit coercion applied for the target's own type and path.
// Embedded references are interpolated. Unresolved references stay in
// the value verbatim and are reported in the result. A circular
// reference fails with schema.ErrCircularReference.
func Resolve(tokens []*token.Token, opts Options) (*Result, error) {
	literal := opts.Literal
	if literal == nil {
		literal = transform.Value
	}

	index := NewIndex(tokens, opts.Rewriter)
	graph := BuildDependencyGraph(tokens, index)

	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]*token.Token, len(tokens))
	for _, t := range tokens {
		byPath[t.DotPath()] = t
	}

	result := &Result{Index: index}
	for _, path := range order {
		resolveToken(byPath[path], index, literal, result)
	}
	return result, nil
}

func resolveToken(t *token.Token, index *Index, literal func(*token.Token) string, result *Result) {
	t.Unresolved = nil
	t.ResolutionChain = nil

	if len(t.Refs) == 0 {
		t.Value = literal(t)
		return
	}

	interpolate := func(s string) string {
		return token.ReplaceRefs(s, func(ref string) string {
			target, ok := index.LookupFrom(t, ref)
			if !ok {
				t.Unresolved = append(t.Unresolved, ref)
				result.Unresolved = append(result.Unresolved, &UnresolvedReferenceError{Token: t.DotPath(), Ref: ref})
				return token.WrapRef(ref)
			}
			return target.Value
		})
	}

	switch raw := t.RawValue.(type) {
	case string:
		if ref, ok := token.ParseWholeRef(raw); ok {
			if target, found := index.LookupFrom(t, ref); found {
				t.Value = target.Value
				t.ResolutionChain = append([]string{target.DotPath()}, target.ResolutionChain...)
				return
			}
		}
		t.Value = interpolate(raw)
	case []any:
		parts := make([]string, len(raw))
		for i, item := range raw {
			if s, ok := item.(string); ok {
				parts[i] = interpolate(s)
			} else {
				parts[i] = transform.Format(item)
			}
		}
		t.Value = strings.Join(parts, ", ")
	default:
		t.Value = literal(t)
	}
}
