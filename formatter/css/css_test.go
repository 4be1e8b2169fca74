/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/brandtokens/formatter"
	"bennypowers.dev/brandtokens/formatter/css"
	"bennypowers.dev/brandtokens/testutil"
	"bennypowers.dev/brandtokens/token"
	"bennypowers.dev/brandtokens/transform"
)

func tok(path, name string, raw any, value string) *token.Token {
	t := &token.Token{
		Path:     strings.Split(path, "."),
		Name:     name,
		RawValue: raw,
		Value:    value,
	}
	if s, ok := raw.(string); ok {
		t.Refs = token.ExtractAllRefs(s)
	}
	if arr, ok := raw.([]any); ok {
		for _, item := range arr {
			if s, ok := item.(string); ok {
				t.Refs = append(t.Refs, token.ExtractAllRefs(s)...)
			}
		}
	}
	return t
}

func TestFormat(t *testing.T) {
	names := map[string]string{
		"Grey.900":         "colour-grey-900",
		"Grey.100":         "grey-100",
		"Primary.Base":     "primary-base",
		"Font-family.Body": "font-family-body",
	}
	refName := func(_ *token.Token, ref string) string {
		if n, ok := names[ref]; ok {
			return n
		}
		return transform.FlattenRef(ref, nil)
	}

	tests := []struct {
		name   string
		tokens []*token.Token
		opts   formatter.Options
	}{
		{
			name: "literal",
			tokens: []*token.Token{
				tok("Grey.100", "grey-100", float64(100), "100px"),
				tok("Colour.Grey.900", "colour-grey-900", "#1A1A1A", "#1a1a1a"),
				tok("Font family.Body", "font-family-body", []any{"Inter", "sans-serif"}, "Inter, sans-serif"),
			},
		},
		{
			name: "references",
			tokens: []*token.Token{
				tok("Primary.Base", "primary-base", "{Grey.900}", "#1a1a1a"),
				tok("Neutral.Divider", "neutral-divider", "{Grey.100}", "100px"),
				tok("Border.Line", "border-line", "{Grey.100} solid {Primary.Base}", "100px solid #1a1a1a"),
				tok("Font.Stack", "font-stack", []any{"{Font-family.Body}", "serif"}, "Inter, serif"),
				tok("Primary.Ghost", "primary-ghost", "{Missing.Token}", "{Missing.Token}"),
				tok("Neutral.Plain", "neutral-plain", "#FFF", "#ffffff"),
			},
			opts: formatter.Options{
				Selector:         `[data-theme="brand-a"]`,
				OutputReferences: true,
				RefName:          refName,
			},
		},
		{
			name: "empty",
			opts: formatter.Options{Selector: `[data-theme="brand-b"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := css.New().Format(tt.tokens, tt.opts)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			testutil.AssertGolden(t, "golden/css/"+tt.name+".css", got)

			if err := css.Verify(got); err != nil {
				t.Errorf("Verify() error = %v", err)
			}
		})
	}
}

func TestFormat_UnnamedToken(t *testing.T) {
	_, err := css.New().Format([]*token.Token{tok("A", "", "x", "x")}, formatter.Options{})
	if err == nil {
		t.Error("Format() expected error for token without a name")
	}
}

func TestDeclarations(t *testing.T) {
	out, err := css.New().Format([]*token.Token{
		tok("Primary.Base", "primary-base", "{Grey.900}", "#1a1a1a"),
		tok("Scale.0", "scale-0", float64(0), "0"),
	}, formatter.Options{Selector: ":root", OutputReferences: true})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	decls, err := css.Declarations(out)
	if err != nil {
		t.Fatalf("Declarations() error = %v", err)
	}
	if len(decls) != 2 {
		t.Fatalf("len(Declarations()) = %d, want 2", len(decls))
	}
	if decls[0].Property != "--primary-base" || decls[0].Value != "var(--grey-900)" {
		t.Errorf("decls[0] = %+v", decls[0])
	}
	if decls[1].Property != "--scale-0" || decls[1].Value != "0" {
		t.Errorf("decls[1] = %+v", decls[1])
	}
}

func TestVerify_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rule block", "this is not a stylesheet"},
		{"bare declaration", "--a: 1px;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := css.Verify([]byte(tt.data)); !errors.Is(err, css.ErrMalformedCSS) {
				t.Errorf("Verify() error = %v, want ErrMalformedCSS", err)
			}
		})
	}
}
