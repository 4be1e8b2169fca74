/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/brandtokens/parser"
	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
)

func tok(path string, raw any, typ string) *token.Token {
	t := &token.Token{Path: token.RefSegments(path), RawValue: raw, Type: typ}
	t.Refs = parser.RefsOf(raw)
	return t
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "1", ""),
		tok("b", "{a}", ""),
		tok("c", "{b}", ""),
	}

	graph := resolver.BuildDependencyGraph(tokens, resolver.NewIndex(tokens, nil))

	if got := graph.Dependencies("c"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Dependencies(c) = %v", got)
	}
	if got := graph.Dependencies("a"); len(got) != 0 {
		t.Errorf("Dependencies(a) = %v, want none", got)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("TopologicalSort() = %v", order)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []*token.Token{
		tok("a", "{c}", ""),
		tok("b", "{a}", ""),
		tok("c", "{b}", ""),
	}

	graph := resolver.BuildDependencyGraph(tokens, resolver.NewIndex(tokens, nil))

	_, err := graph.TopologicalSort()
	if !errors.Is(err, schema.ErrCircularReference) {
		t.Fatalf("expected ErrCircularReference, got %v", err)
	}

	var cycle *resolver.CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected *CycleError, got %T", err)
	}
	if !slices.Equal(cycle.Path, []string{"a", "c", "b", "a"}) {
		t.Errorf("cycle = %v", cycle.Path)
	}
	if want := "circular reference detected: a -> c -> b -> a"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDependencyGraph_DiamondOrder(t *testing.T) {
	tokens := []*token.Token{
		tok("top", "{left} {right}", ""),
		tok("left", "{base}", ""),
		tok("right", "{base}", ""),
		tok("base", "1", ""),
	}

	order, err := resolver.BuildDependencyGraph(tokens, resolver.NewIndex(tokens, nil)).TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"base", "left", "right", "top"}) {
		t.Errorf("TopologicalSort() = %v", order)
	}
}

func TestDependencyGraph_CanonicalReferences(t *testing.T) {
	tokens := []*token.Token{
		tok("Colour.Grey.100", "#eee", "color"),
		tok("Primary.Base", "{Grey.100}", "color"),
	}

	graph := resolver.BuildDependencyGraph(tokens, resolver.NewIndex(tokens, nil))

	if got := graph.Dependencies("Primary.Base"); !slices.Equal(got, []string{"Colour.Grey.100"}) {
		t.Errorf("Dependencies() = %v", got)
	}
}
