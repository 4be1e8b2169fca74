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

	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
)

func TestResolve(t *testing.T) {
	tokens := []*token.Token{
		tok("Grey.100", float64(100), "dimension"),
		tok("Colour.Grey.900", "#1A1A1A", "color"),
		tok("Scale.0", float64(0), "dimension"),
		tok("Primary.Base", "{Grey.900}", "color"),
		tok("Surface.Primary", "{Primary.Base}", "color"),
		tok("Neutral.Divider", "{Grey.100}", "dimension"),
		tok("Border.Width", "{Grey.100}", "number"),
		tok("Border.Line", "{0} solid {Primary.Base}", "border"),
		tok("Stack", []any{"{Primary.Base}", float64(2)}, ""),
	}

	result, err := resolver.Resolve(tokens, resolver.Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(result.Unresolved) != 0 {
		t.Errorf("unexpected unresolved references: %v", result.Err())
	}

	want := map[string]string{
		"Grey.100":        "100px",
		"Colour.Grey.900": "#1a1a1a",
		"Scale.0":         "0",
		"Primary.Base":    "#1a1a1a",
		"Surface.Primary": "#1a1a1a",
		"Neutral.Divider": "100px",
		"Border.Width":    "100px",
		"Border.Line":     "0 solid #1a1a1a",
		"Stack":           "#1a1a1a, 2",
	}
	for _, tk := range tokens {
		if got := tk.Value; got != want[tk.DotPath()] {
			t.Errorf("%s.Value = %q, want %q", tk.DotPath(), got, want[tk.DotPath()])
		}
	}

	if got := tokens[4].ResolutionChain; !slices.Equal(got, []string{"Primary.Base", "Colour.Grey.900"}) {
		t.Errorf("ResolutionChain = %v", got)
	}
}

func TestResolve_Unresolved(t *testing.T) {
	tokens := []*token.Token{
		tok("Primary.Base", "{Missing.Token}", "color"),
		tok("Border", "1px solid {Nope}", ""),
	}

	result, err := resolver.Resolve(tokens, resolver.Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if tokens[0].Value != "{Missing.Token}" {
		t.Errorf("unresolved value = %q, want verbatim reference", tokens[0].Value)
	}
	if tokens[1].Value != "1px solid {Nope}" {
		t.Errorf("unresolved value = %q", tokens[1].Value)
	}
	if !slices.Equal(tokens[0].Unresolved, []string{"Missing.Token"}) {
		t.Errorf("Unresolved = %v", tokens[0].Unresolved)
	}
	if len(result.Unresolved) != 2 {
		t.Fatalf("len(Unresolved) = %d, want 2", len(result.Unresolved))
	}

	err = result.Err()
	if !errors.Is(err, schema.ErrUnresolvedReference) {
		t.Errorf("Err() = %v, want ErrUnresolvedReference", err)
	}
	var ure *resolver.UnresolvedReferenceError
	if !errors.As(err, &ure) || ure.Token != "Primary.Base" || ure.Ref != "Missing.Token" {
		t.Errorf("errors.As() = %+v", ure)
	}
}

func TestResolve_Cycle(t *testing.T) {
	tokens := []*token.Token{
		tok("A", "{B}", ""),
		tok("B", "{A}", ""),
	}
	if _, err := resolver.Resolve(tokens, resolver.Options{}); !errors.Is(err, schema.ErrCircularReference) {
		t.Errorf("Resolve() error = %v, want ErrCircularReference", err)
	}
}

func TestResolve_CustomLiteral(t *testing.T) {
	tokens := []*token.Token{
		tok("A", "x", ""),
		tok("B", "{A}", ""),
	}
	_, err := resolver.Resolve(tokens, resolver.Options{
		Literal: func(t *token.Token) string { return "lit-" + t.DotPath() },
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if tokens[1].Value != "lit-A" {
		t.Errorf("B.Value = %q, want lit-A", tokens[1].Value)
	}
}

func TestIndex_Lookup(t *testing.T) {
	tokens := []*token.Token{
		tok("Colour.Grey.100", "#eee", "color"),
		tok("Primary", "#f00", "color"),
		tok("Surface.Primary", "{Primary}", "color"),
		tok("Text.Body", "#000", "color"),
	}
	ix := resolver.NewIndex(tokens, nil)

	tests := []struct {
		ref  string
		want string
	}{
		{"Colour.Grey.100", "Colour.Grey.100"},
		{"Grey.100", "Colour.Grey.100"},
		{"Primary", "Primary"},
		{"Body", "Text.Body"},
	}
	for _, tt := range tests {
		got, ok := ix.Lookup(tt.ref)
		if !ok || got.DotPath() != tt.want {
			t.Errorf("Lookup(%q) = %v, %v, want %s", tt.ref, got, ok, tt.want)
		}
	}

	if _, ok := ix.Lookup("Nope"); ok {
		t.Error("Lookup(Nope) found a token")
	}
	if got, ok := ix.LookupFrom(tokens[2], "Primary"); !ok || got != tokens[1] {
		t.Errorf("LookupFrom() resolved to %v", got)
	}
}
