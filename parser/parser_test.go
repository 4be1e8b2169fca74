/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"io"
	"slices"
	"testing"

	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/parser"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/section"
	"bennypowers.dev/brandtokens/testutil"
)

func TestParseFile_JSONWithComments(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := testutil.NewFixtureFS(t, "fixtures/comments", "/test")

	doc, err := parser.ParseFile(mfs, "/test/tokens.json")
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}

	if doc.Format != schema.TokensStudio {
		t.Errorf("Format = %s, want tokens-studio", doc.Format)
	}
	if got := doc.IDs(); len(got) != 1 || got[0] != section.PrimitivesDefault {
		t.Errorf("IDs() = %v, want [Primitives/Default]", got)
	}
	if want := []string{"$themes", "Unknown layer/Default"}; !slices.Equal(doc.Ignored, want) {
		t.Errorf("Ignored = %v, want %v", doc.Ignored, want)
	}

	s, _ := doc.Get(section.PrimitivesDefault)
	leaf, ok := s.Tree.Lookup("Colour", "Grey", "900", "value")
	if !ok || leaf.Value() != "#1A1A1A" {
		t.Errorf("Colour.Grey.900.value = %v", leaf)
	}
}

func TestParseFile_YAML(t *testing.T) {
	logger.SetOutput(io.Discard)
	mfs := testutil.NewFixtureFS(t, "fixtures/yaml", "/test")

	doc, err := parser.ParseFile(mfs, "/test/tokens.yaml")
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if doc.Format != schema.DTCG {
		t.Errorf("Format = %s, want dtcg", doc.Format)
	}

	want := []section.ID{
		section.PrimitivesDefault,
		{Layer: section.LayerMapped, Qualifier: "BrandA"},
		{Layer: section.LayerResponsive, Qualifier: "Mobile"},
	}
	if got := doc.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestParseFile_Missing(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/yaml", "/test")
	if _, err := parser.ParseFile(mfs, "/test/nope.json"); err == nil {
		t.Error("ParseFile() expected error for missing file")
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated JSON", `{"Primitives/Default": {`},
		{"invalid JSON", `{"a": }`},
		{"root array", `[1, 2]`},
		{"root scalar", `just a string`},
		{"empty", ``},
		{"bad YAML", "a: [1, 2\nb: c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseDocument([]byte(tt.data), "tokens.json")
			if !errors.Is(err, schema.ErrMalformedInput) {
				t.Fatalf("ParseDocument() error = %v, want ErrMalformedInput", err)
			}
			var mie *section.MalformedInputError
			if !errors.As(err, &mie) || mie.Source != "tokens.json" {
				t.Errorf("errors.As() = %+v", mie)
			}
		})
	}
}

func TestParseTree_Order(t *testing.T) {
	tree, err := parser.ParseTree([]byte(`{"z": {"value": 1}, "a": {"value": 2}, "m": {"value": 3}}`))
	if err != nil {
		t.Fatalf("ParseTree() error = %v", err)
	}
	if got := tree.Keys(); !slices.Equal(got, []string{"z", "a", "m"}) {
		t.Errorf("Keys() = %v, want document order", got)
	}
	leaf, _ := tree.Lookup("z", "value")
	if _, ok := leaf.Value().(float64); !ok {
		t.Errorf("numbers decode as %T, want float64", leaf.Value())
	}
}
