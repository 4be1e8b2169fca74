/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package brand holds the registry of recognized brands and their CSS slugs.
package brand

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ErrInvalidBrand indicates an empty or duplicate brand identifier.
var ErrInvalidBrand = errors.New("invalid brand identifier")

// Registry is an ordered set of brand identifiers.
// Build passes run once per brand, in registry order.
type Registry struct {
	ids       []string
	overrides map[string]string
}

// NewRegistry creates a registry from brand identifiers in build order.
func NewRegistry(ids ...string) (*Registry, error) {
	r := &Registry{overrides: make(map[string]string)}
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty identifier", ErrInvalidBrand)
		}
		if slices.Contains(r.ids, id) {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidBrand, id)
		}
		r.ids = append(r.ids, id)
	}
	return r, nil
}

// Default returns the stock two-brand registry.
func Default() *Registry {
	r, _ := NewRegistry("BrandA", "BrandB")
	return r
}

// SetSlug overrides the derived slug for a registered brand.
func (r *Registry) SetSlug(id, slug string) error {
	if !r.Contains(id) {
		return fmt.Errorf("%w: %q is not registered", ErrInvalidBrand, id)
	}
	if slug == "" {
		delete(r.overrides, id)
		return nil
	}
	r.overrides[id] = slug
	return nil
}

// IDs returns brand identifiers in registry order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// Len returns the number of registered brands.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Contains reports whether id is a registered brand.
func (r *Registry) Contains(id string) bool {
	return slices.Contains(r.ids, id)
}

// Slug returns the CSS identifier for a brand, e.g. "BrandA" -> "brand-a".
// Unregistered identifiers are slugged the same way.
func (r *Registry) Slug(id string) string {
	if s, ok := r.overrides[id]; ok {
		return s
	}
	return Slug(id)
}

// Slugs returns every brand slug in registry order.
func (r *Registry) Slugs() []string {
	slugs := make([]string, len(r.ids))
	for i, id := range r.ids {
		slugs[i] = r.Slug(id)
	}
	return slugs
}

// Slug inserts "-" before every ASCII capital after the first character
// and lowercases the result: "BrandA" -> "brand-a", "ACME" -> "a-c-m-e".
// Digits and acronyms are not treated as words.
func Slug(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 2)
	for i, r := range id {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
