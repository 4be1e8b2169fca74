/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"testing"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/token"
	"bennypowers.dev/brandtokens/transform"
)

func TestFlattenName(t *testing.T) {
	reg := brand.Default()
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"simple", []string{"Grey", "100"}, "grey-100"},
		{"category kept", []string{"Colour", "Grey", "100"}, "colour-grey-100"},
		{"scaffolding dropped", []string{"Primitives", "Default", "Alias colours", "Mapped", "Alias", "Primary"}, "primary"},
		{"brand slug dropped", []string{"brand-a", "Surface"}, "surface"},
		{"brand identifier kept", []string{"Colour", "Brand", "BrandA", "Blue"}, "colour-brand-branda-blue"},
		{"whitespace", []string{"Font family", "Heading"}, "font-family-heading"},
		{"slash", []string{"Sizes", "Small/Medium"}, "sizes-small-medium"},
		{"percent", []string{"Opacity", "50%"}, "opacity-50"},
		{"arrow glyph", []string{"Primary", "Subtle ↘︎ 50%"}, "primary-subtle-50"},
		{"collapses dashes", []string{"A--B", " C "}, "a-b-c"},
		{"other symbols", []string{"Scale", "1.5"}, "scale-1-5"},
		{"underscore", []string{"Line_height", "Body_"}, "line-height-body"},
		{"letters kept", []string{"Größe", "Klein"}, "größe-klein"},
		{"empty", []string{"Default"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform.FlattenName(tt.path, reg); got != tt.expected {
				t.Errorf("FlattenName(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFlattenName_Distinct(t *testing.T) {
	paths := [][]string{
		{"Grey", "100"},
		{"Colour", "Grey", "100"},
		{"Surface", "Primary"},
		{"Text", "Primary"},
		{"Font", "Font family", "Heading"},
		{"Font", "Font weight", "Heading"},
	}
	seen := make(map[string][]string)
	for _, p := range paths {
		name := transform.FlattenName(p, brand.Default())
		if prev, ok := seen[name]; ok {
			t.Errorf("%v and %v both flatten to %q", prev, p, name)
		}
		seen[name] = p
	}
}

func TestFlattenRef(t *testing.T) {
	if got := transform.FlattenRef("Grey.100", nil); got != "grey-100" {
		t.Errorf("FlattenRef() = %q, want grey-100", got)
	}
}

func TestCoerceUnit(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected string
		applied  bool
	}{
		{"zero", token.Token{RawValue: float64(0), Type: "dimension", Path: []string{"Scale", "0"}}, "0", true},
		{"dimension", token.Token{RawValue: float64(24), Type: "dimension", Path: []string{"Scale", "600"}}, "24px", true},
		{"untyped number", token.Token{RawValue: float64(8), Path: []string{"Spacing"}}, "8px", true},
		{"fraction", token.Token{RawValue: 1.5, Type: "dimension", Path: []string{"Border"}}, "1.5px", true},
		{"color type", token.Token{RawValue: float64(24), Type: "color", Path: []string{"Colour"}}, "", false},
		{"weight path", token.Token{RawValue: float64(400), Type: "fontWeights", Path: []string{"Typography", "Font weight", "Regular"}}, "", false},
		{"weight inside a segment", token.Token{RawValue: float64(600), Path: []string{"Text", "Heading-weight"}}, "", false},
		{"capitalized Weight is not excluded", token.Token{RawValue: float64(700), Path: []string{"Typography", "Weight", "Bold"}}, "700px", true},
		{"Font segment", token.Token{RawValue: float64(16), Type: "fontSizes", Path: []string{"Font", "Size", "Body"}}, "", false},
		{"string value", token.Token{RawValue: "24", Type: "dimension", Path: []string{"Scale"}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transform.CoerceUnit(&tt.token)
			if ok != tt.applied || got != tt.expected {
				t.Errorf("CoerceUnit() = %q, %v, want %q, %v", got, ok, tt.expected, tt.applied)
			}
		})
	}
}

func TestColorCSS(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		typ      string
		expected string
		applied  bool
	}{
		{"uppercase hex", "#1A1A1A", "color", "#1a1a1a", true},
		{"short hex", "#fff", "color", "#ffffff", true},
		{"named", "red", "color", "#ff0000", true},
		{"rgb", "rgb(0, 80, 255)", "color", "#0050ff", true},
		{"translucent", "rgba(0, 0, 0, 0.5)", "color", "rgba(0, 0, 0, 0.5)", true},
		{"object", map[string]any{"r": float64(1), "g": float64(0), "b": float64(0)}, "color", "#ff0000", true},
		{"object alpha", map[string]any{"r": float64(0), "g": float64(0), "b": float64(1), "a": 0.25}, "color", "rgba(0, 0, 255, 0.25)", true},
		{"unparseable", "not-a-colour", "color", "", false},
		{"not a color token", "#fff", "dimension", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Token{RawValue: tt.raw, Type: tt.typ}
			got, ok := transform.ColorCSS(&tok)
			if ok != tt.applied || got != tt.expected {
				t.Errorf("ColorCSS() = %q, %v, want %q, %v", got, ok, tt.expected, tt.applied)
			}
		})
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected string
	}{
		{"color", token.Token{RawValue: "#0050FF", Type: "color"}, "#0050ff"},
		{"dimension", token.Token{RawValue: float64(16), Type: "dimension", Path: []string{"Scale", "400"}}, "16px"},
		{"font weight", token.Token{RawValue: float64(700), Path: []string{"Font weight", "Bold"}}, "700"},
		{"string", token.Token{RawValue: "Inter", Type: "fontFamilies"}, "Inter"},
		{"array", token.Token{RawValue: []any{"Inter", "sans-serif"}, Type: "fontFamilies"}, "Inter, sans-serif"},
		{"bool", token.Token{RawValue: true}, "true"},
		{"nil", token.Token{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform.Value(&tt.token); got != tt.expected {
				t.Errorf("Value() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{24, "24"},
		{0.5, "0.5"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := transform.FormatNumber(tt.in); got != tt.expected {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
