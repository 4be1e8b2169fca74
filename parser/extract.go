/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/token"
)

// Extract returns the tokens of a merged tree in document order.
//
// A token is an object holding a scalar or array value under the format's
// value key; color tokens may also hold an object of channels.
// The other spelling is accepted too, so trees merged from documents with
// different spellings still extract. Group-level types are inherited by
// descendants that do not declare their own.
func Extract(tree *token.Node, format schema.Format) []*token.Token {
	var result []*token.Token
	extract(tree, nil, "", spellings(format), &result)
	return result
}

func spellings(format schema.Format) []schema.Format {
	if format == schema.DTCG {
		return []schema.Format{schema.DTCG, schema.TokensStudio}
	}
	return []schema.Format{schema.TokensStudio, schema.DTCG}
}

func extract(n *token.Node, path []string, inheritedType string, formats []schema.Format, result *[]*token.Token) {
	currentType := inheritedType
	if t := stringKey(n, formats, schema.Format.TypeKey); t != "" {
		currentType = t
	}

	for _, key := range n.Keys() {
		if strings.HasPrefix(key, "$") {
			continue
		}
		child, _ := n.Get(key)
		if !child.IsObject() {
			continue
		}
		childPath := append(path[:len(path):len(path)], key)

		if valueNode, ok := leafValue(child, formats); ok {
			t := newToken(child, valueNode, childPath, currentType, formats)
			if valueNode.IsObject() && t.Type != token.TypeColor {
				logger.Debug("skipping composite token %s", strings.Join(childPath, "."))
				continue
			}
			*result = append(*result, t)
			continue
		}

		extract(child, childPath, currentType, formats, result)
	}
}

func leafValue(n *token.Node, formats []schema.Format) (*token.Node, bool) {
	for _, f := range formats {
		if v, ok := n.Get(f.ValueKey()); ok {
			return v, true
		}
	}
	return nil, false
}

func stringKey(n *token.Node, formats []schema.Format, key func(schema.Format) string) string {
	for _, f := range formats {
		if v, ok := n.Get(key(f)); ok {
			if s, ok := v.Value().(string); ok {
				return s
			}
		}
	}
	return ""
}

func newToken(n, valueNode *token.Node, path []string, inheritedType string, formats []schema.Format) *token.Token {
	t := &token.Token{
		Path:        path,
		RawValue:    valueNode.Interface(),
		Type:        inheritedType,
		Description: stringKey(n, formats, schema.Format.DescriptionKey),
	}
	if typ := stringKey(n, formats, schema.Format.TypeKey); typ != "" {
		t.Type = typ
	}
	t.Refs = RefsOf(t.RawValue)
	return t
}

// RefsOf returns the references in a raw value: a string, or the string
// elements of an array.
func RefsOf(raw any) []string {
	switch v := raw.(type) {
	case string:
		return token.ExtractAllRefs(v)
	case []any:
		var refs []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				refs = append(refs, token.ExtractAllRefs(s)...)
			}
		}
		return refs
	}
	return nil
}
