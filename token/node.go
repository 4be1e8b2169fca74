/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"slices"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// Node is a node in an ordered token tree.
//
// An object node keeps its children in insertion order. Overwriting an
// existing key replaces the child in place without moving it. Any other
// node is a scalar holding a decoded value: string, float64, bool, nil
// or []any.
type Node struct {
	children *linkedhashmap.Map[string, *Node]
	value    any
}

// NewObject creates an empty object node.
func NewObject() *Node {
	return &Node{children: linkedhashmap.New[string, *Node]()}
}

// NewScalar creates a scalar node holding v.
func NewScalar(v any) *Node {
	return &Node{value: v}
}

// IsObject reports whether n is an object node.
func (n *Node) IsObject() bool {
	return n != nil && n.children != nil
}

// Value returns the scalar value of n, or nil for object nodes.
func (n *Node) Value() any {
	if n == nil {
		return nil
	}
	return n.value
}

// SetValue replaces the scalar value of n.
func (n *Node) SetValue(v any) {
	n.value = v
}

// Get returns the child at key.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	return n.children.Get(key)
}

// Lookup follows path from n and returns the node at its end.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n
	for _, seg := range path {
		next, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Set stores child at key. n must be an object node.
func (n *Node) Set(key string, child *Node) {
	n.children.Put(key, child)
}

// Keys returns child keys in insertion order.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	return n.children.Keys()
}

// Len returns the number of children of an object node.
func (n *Node) Len() int {
	if !n.IsObject() {
		return 0
	}
	return n.children.Size()
}

// Merge deep-merges src into n. Objects merge recursively; anything else
// overwrites the target at that key. src is cloned, so later mutation of
// n never reaches the source tree.
func (n *Node) Merge(src *Node) {
	if !n.IsObject() || !src.IsObject() {
		return
	}
	for _, key := range src.Keys() {
		child, _ := src.Get(key)
		existing, ok := n.Get(key)
		if ok && existing.IsObject() && child.IsObject() {
			existing.Merge(child)
			continue
		}
		n.Set(key, child.Clone())
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if !n.IsObject() {
		if arr, ok := n.value.([]any); ok {
			return NewScalar(slices.Clone(arr))
		}
		return NewScalar(n.value)
	}
	out := NewObject()
	for _, key := range n.Keys() {
		child, _ := n.Get(key)
		out.Set(key, child.Clone())
	}
	return out
}

// Walk calls fn for every node below n in depth-first document order,
// passing the path of keys leading to it. Returning false from fn skips
// the node's children.
func (n *Node) Walk(fn func(path []string, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []string, fn func([]string, *Node) bool) {
	for _, key := range n.Keys() {
		child, _ := n.Get(key)
		childPath := slices.Clip(append(path, key))
		if fn(childPath, child) && child.IsObject() {
			child.walk(childPath, fn)
		}
	}
}

// Interface converts n to plain Go values: map[string]any for objects,
// the scalar value otherwise. Key order is lost.
func (n *Node) Interface() any {
	if !n.IsObject() {
		return n.Value()
	}
	m := make(map[string]any, n.Len())
	for _, key := range n.Keys() {
		child, _ := n.Get(key)
		m[key] = child.Interface()
	}
	return m
}

// Equal reports whether two trees hold the same keys, in the same order,
// with the same scalar values.
func (n *Node) Equal(other *Node) bool {
	if n.IsObject() != other.IsObject() {
		return false
	}
	if !n.IsObject() {
		return scalarEqual(n.Value(), other.Value())
	}
	if !slices.Equal(n.Keys(), other.Keys()) {
		return false
	}
	for _, key := range n.Keys() {
		a, _ := n.Get(key)
		b, _ := other.Get(key)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

func scalarEqual(a, b any) bool {
	aa, aok := a.([]any)
	bb, bok := b.([]any)
	if aok || bok {
		if !aok || !bok || len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !scalarEqual(aa[i], bb[i]) {
				return false
			}
		}
		return true
	}
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if aok || bok {
		if !aok || !bok || len(am) != len(bm) {
			return false
		}
		for k, v := range am {
			if !scalarEqual(v, bm[k]) {
				return false
			}
		}
		return true
	}
	return a == b
}
