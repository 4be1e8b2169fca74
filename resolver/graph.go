/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver rewrites references for the merged tree and resolves
// token values against it.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
)

// DependencyGraph is the reference graph of one pass. Nodes are token
// dot paths in token order, which makes the order and cycle reports
// deterministic.
type DependencyGraph struct {
	nodes []string
	edges map[string][]string
}

// BuildDependencyGraph adds an edge from each token to every token its
// references resolve to. Unresolvable references add no edge.
func BuildDependencyGraph(tokens []*token.Token, index *Index) *DependencyGraph {
	g := &DependencyGraph{
		nodes: make([]string, 0, len(tokens)),
		edges: make(map[string][]string, len(tokens)),
	}
	for _, tok := range tokens {
		from := tok.DotPath()
		g.nodes = append(g.nodes, from)
		for _, ref := range tok.Refs {
			if dep, ok := index.LookupFrom(tok, ref); ok {
				g.edges[from] = append(g.edges[from], dep.DotPath())
			}
		}
	}
	return g
}

// Dependencies returns the paths the token at key references directly.
func (g *DependencyGraph) Dependencies(key string) []string {
	return g.edges[key]
}

// CycleError reports a reference cycle. Path starts and ends at the same
// token.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", schema.ErrCircularReference, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return schema.ErrCircularReference
}

type visitState uint8

const (
	unvisited visitState = iota
	onStack
	done
)

// TopologicalSort orders token paths so that every token follows the
// tokens it references. The first cycle found fails with *CycleError.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	state := make(map[string]visitState, len(g.nodes))
	order := make([]string, 0, len(g.nodes))
	var stack []string

	var visit func(node string) *CycleError
	visit = func(node string) *CycleError {
		switch state[node] {
		case done:
			return nil
		case onStack:
			start := slices.Index(stack, node)
			return &CycleError{Path: append(slices.Clone(stack[start:]), node)}
		}
		state[node] = onStack
		stack = append(stack, node)
		for _, dep := range g.edges[node] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[node] = done
		order = append(order, node)
		return nil
	}

	for _, node := range g.nodes {
		if err := visit(node); err != nil {
			return nil, err
		}
	}
	return order, nil
}
