/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson renders tokens as one flat JSON object of CSS variable
// names to values, in token order.
package flatjson

import (
	"bytes"
	"encoding/json"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"

	"bennypowers.dev/brandtokens/formatter"
	"bennypowers.dev/brandtokens/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format keeps the first position of a repeated name and the last value.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	values := linkedhashmap.New[string, string]()
	for _, tok := range tokens {
		values.Put(tok.CSSVariableName(), formatter.EmittedValue(tok, opts))
	}
	compact, err := values.ToJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
