/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package buildctx defines the build context that scopes one build pass.
//
// A Context is passed explicitly to every stage of a pass. Nothing in the
// build reads it from shared state.
package buildctx

import (
	"fmt"

	"bennypowers.dev/brandtokens/brand"
)

// Kind is the category of a build pass.
type Kind int

const (
	// Primitives builds the global primitive layer.
	Primitives Kind = iota

	// Brand builds one brand's primitive, alias and mapped layers.
	Brand

	// Responsive builds responsive overrides.
	Responsive
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Primitives:
		return "Primitives"
	case Brand:
		return "Brand"
	case Responsive:
		return "Responsive"
	default:
		return "unknown"
	}
}

// Context identifies the current build pass.
type Context struct {
	Kind Kind

	// Brand is the brand identifier when Kind is Brand.
	Brand string
}

// ForPrimitives returns the Primitives context.
func ForPrimitives() Context {
	return Context{Kind: Primitives}
}

// ForBrand returns the context for one brand.
func ForBrand(id string) Context {
	return Context{Kind: Brand, Brand: id}
}

// ForResponsive returns the Responsive context.
func ForResponsive() Context {
	return Context{Kind: Responsive}
}

// String returns the context name: "Primitives", "Responsive" or the brand identifier.
func (c Context) String() string {
	if c.Kind == Brand {
		return c.Brand
	}
	return c.Kind.String()
}

// IsBrand reports whether this is a brand pass.
func (c Context) IsBrand() bool {
	return c.Kind == Brand
}

// Parse returns the context named by s, which must be "Primitives",
// "Responsive" or a brand in the registry.
func Parse(s string, registry *brand.Registry) (Context, error) {
	switch s {
	case "Primitives":
		return ForPrimitives(), nil
	case "Responsive":
		return ForResponsive(), nil
	}
	if registry != nil && registry.Contains(s) {
		return ForBrand(s), nil
	}
	return Context{}, fmt.Errorf("unknown build context %q", s)
}

// Sequence returns every context in build order:
// Primitives, each brand in registry order, then Responsive.
func Sequence(registry *brand.Registry) []Context {
	seq := []Context{ForPrimitives()}
	for _, id := range registry.IDs() {
		seq = append(seq, ForBrand(id))
	}
	return append(seq, ForResponsive())
}
