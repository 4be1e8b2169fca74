/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package section models the top-level sections of a token document and
// selects the sections relevant to a build context.
package section

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
)

// Layer is a semantic layer of the token document.
type Layer string

// Known layers.
const (
	LayerPrimitives   Layer = "Primitives"
	LayerAliasColours Layer = "Alias colours"
	LayerMapped       Layer = "Mapped"
	LayerResponsive   Layer = "Responsive"
)

// DefaultQualifier qualifies brand-independent sections.
const DefaultQualifier = "Default"

// Layers lists the known layers in document order.
var Layers = []Layer{LayerPrimitives, LayerAliasColours, LayerMapped, LayerResponsive}

// ErrNotSection indicates a top-level key that is not a section identifier.
var ErrNotSection = errors.New("not a section identifier")

// ID identifies a section by layer and qualifier.
type ID struct {
	Layer     Layer
	Qualifier string
}

// PrimitivesDefault is the shared primitive section.
var PrimitivesDefault = ID{Layer: LayerPrimitives, Qualifier: DefaultQualifier}

// Parse parses a "<Layer>/<Qualifier>" key. The layer must be known and
// the qualifier non-empty.
func Parse(key string) (ID, error) {
	layer, qualifier, ok := strings.Cut(key, "/")
	if !ok || qualifier == "" {
		return ID{}, fmt.Errorf("%w: %q", ErrNotSection, key)
	}
	l := Layer(layer)
	if !l.Known() {
		return ID{}, fmt.Errorf("%w: unknown layer %q", ErrNotSection, layer)
	}
	return ID{Layer: l, Qualifier: qualifier}, nil
}

// String returns the section key, "<Layer>/<Qualifier>".
func (id ID) String() string {
	return string(id.Layer) + "/" + id.Qualifier
}

// Known reports whether l is one of the known layers.
func (l Layer) Known() bool {
	switch l {
	case LayerPrimitives, LayerAliasColours, LayerMapped, LayerResponsive:
		return true
	}
	return false
}

// Section is one top-level entry of a token document.
type Section struct {
	ID   ID
	Tree *token.Node
}

// Document is a parsed token document: its sections in document order.
type Document struct {
	// Source names the file the document was read from.
	Source string

	// Format is the detected key spelling.
	Format schema.Format

	// Sections holds recognized sections in document order.
	Sections []Section

	// Ignored lists top-level keys that are not section identifiers.
	Ignored []string
}

// Get returns the section with the given id.
func (d *Document) Get(id ID) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// IDs returns section identifiers in document order.
func (d *Document) IDs() []ID {
	ids := make([]ID, len(d.Sections))
	for i, s := range d.Sections {
		ids[i] = s.ID
	}
	return ids
}

// MalformedInputError reports input that is not the expected document
// structure. Section is empty when the whole blob failed to parse.
type MalformedInputError struct {
	Source  string
	Section string
	Err     error
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString("malformed input")
	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}
	if e.Section != "" {
		fmt.Fprintf(&b, " (section %q)", e.Section)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedInputError) Unwrap() []error {
	return []error{schema.ErrMalformedInput, e.Err}
}
