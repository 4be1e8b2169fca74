/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes token documents into ordered trees and extracts
// tokens from merged trees.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/section"
	"bennypowers.dev/brandtokens/token"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ParseDocument parses a token document. Top-level keys that are not
// section identifiers are recorded in Document.Ignored.
func ParseDocument(data []byte, source string) (*section.Document, error) {
	root, err := ParseTree(data)
	if err != nil {
		return nil, &section.MalformedInputError{Source: source, Err: err}
	}
	if !root.IsObject() {
		return nil, &section.MalformedInputError{
			Source: source,
			Err:    fmt.Errorf("document root is %T, want object", root.Value()),
		}
	}

	doc := &section.Document{Source: source}
	if m, ok := root.Interface().(map[string]any); ok {
		doc.Format = schema.Detect(m)
	}
	for _, key := range root.Keys() {
		id, err := section.Parse(key)
		if err != nil {
			logger.Debug("ignoring top-level key %q in %s", key, source)
			doc.Ignored = append(doc.Ignored, key)
			continue
		}
		tree, _ := root.Get(key)
		doc.Sections = append(doc.Sections, section.Section{ID: id, Tree: tree})
	}
	return doc, nil
}

// ParseFile reads and parses a token document.
func ParseFile(filesystem fs.FileSystem, path string) (*section.Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ParseDocument(data, path)
}

// ParseTree decodes JSON, JSON with comments, or YAML into an ordered tree.
func ParseTree(data []byte) (*token.Node, error) {
	var root yaml.Node
	if isLikelyJSON(data) {
		// JSON path: strip comments, validate strictly, then decode
		// through yaml.v3 to keep key order.
		clean := jsonc.ToJSON(data)
		if !json.Valid(clean) {
			var v any
			if err := json.Unmarshal(clean, &v); err != nil {
				return nil, fmt.Errorf("failed to parse JSON: %w", err)
			}
			return nil, errors.New("failed to parse JSON")
		}
		if err := yaml.Unmarshal(clean, &root); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, errors.New("empty document")
	}
	return convert(&root)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// convert walks a yaml.v3 AST into a token.Node, preserving mapping order.
func convert(n *yaml.Node) (*token.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		return convert(n.Content[0])
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.MappingNode:
		obj := token.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, child)
		}
		return obj, nil
	default:
		v, err := decodeValue(n)
		if err != nil {
			return nil, err
		}
		return token.NewScalar(v), nil
	}
}

// decodeValue decodes a scalar or sequence node. Numbers become float64.
func decodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.SequenceNode {
		arr := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind == yaml.MappingNode {
				obj, err := convert(item)
				if err != nil {
					return nil, err
				}
				arr = append(arr, obj.Interface())
				continue
			}
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	}
	if n.Kind == yaml.AliasNode {
		return decodeValue(n.Alias)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}
	return v, nil
}
