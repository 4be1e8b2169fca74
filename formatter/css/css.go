/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"bennypowers.dev/brandtokens/formatter"
	"bennypowers.dev/brandtokens/token"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// DefaultSelector is used when no selector is configured.
const DefaultSelector = ":root"

// Formatter outputs a single CSS rule block of custom properties.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders tokens in order as custom properties under opts.Selector,
// preceded by the generated-file header.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	selector := opts.Selector
	if selector == "" {
		selector = DefaultSelector
	}

	var buf bytes.Buffer
	buf.WriteString(formatter.Header)
	buf.WriteString(selector)
	buf.WriteString(" {\n")
	for _, tok := range tokens {
		name := tok.CSSVariableName()
		if name == "" {
			return nil, fmt.Errorf("token %s has no name", tok.DotPath())
		}
		fmt.Fprintf(&buf, "  %s: %s;\n", name, formatter.EmittedValue(tok, opts))
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Declaration is a custom property read back from a stylesheet.
type Declaration struct {
	Selector string
	Property string
	Value    string
}

// ErrMalformedCSS is returned when generated output does not parse.
var ErrMalformedCSS = errors.New("malformed CSS")

// Verify reports whether data parses as a stylesheet of rule blocks.
func Verify(data []byte) error {
	_, err := Declarations(data)
	return err
}

// Declarations parses data and returns its custom property declarations
// in document order.
func Declarations(data []byte) ([]Declaration, error) {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var (
		decls    []Declaration
		selector string
		depth    int
		rulesets int
	)
	for {
		gt, _, tokData := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformedCSS, err)
			}
			if depth != 0 {
				return nil, fmt.Errorf("%w: unclosed rule block %q", ErrMalformedCSS, selector)
			}
			if rulesets == 0 && len(bytes.TrimSpace(data)) > 0 {
				return nil, fmt.Errorf("%w: no rule block found", ErrMalformedCSS)
			}
			return decls, nil

		case css.BeginRulesetGrammar:
			selector = joinTokens(tokData, parser.Values())
			depth++
			rulesets++

		case css.EndRulesetGrammar:
			depth--

		case css.CustomPropertyGrammar, css.DeclarationGrammar:
			if depth == 0 {
				return nil, fmt.Errorf("%w: declaration %s outside a rule block", ErrMalformedCSS, tokData)
			}
			decls = append(decls, Declaration{
				Selector: selector,
				Property: string(tokData),
				Value:    joinTokens(nil, parser.Values()),
			})
		}
	}
}

func joinTokens(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}
