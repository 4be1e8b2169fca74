/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/brandtokens/token"
)

// CoerceUnit appends "px" to numeric values. It applies only when the raw
// value is a number, the type is not color, no path segment is "Font" and
// no segment contains "weight" (case-sensitive, so "Weight" does not
// count). Zero stays unitless.
func CoerceUnit(t *token.Token) (string, bool) {
	n, ok := Number(t.RawValue)
	if !ok || t.Type == token.TypeColor {
		return "", false
	}
	if slices.Contains(t.Path, "Font") {
		return "", false
	}
	for _, seg := range t.Path {
		if strings.Contains(seg, "weight") {
			return "", false
		}
	}
	if n == 0 {
		return "0", true
	}
	return FormatNumber(n) + "px", true
}

// Value returns the CSS value of a token whose raw value holds no
// references: colour normalization, then unit coercion, then plain
// formatting.
func Value(t *token.Token) string {
	if s, ok := ColorCSS(t); ok {
		return s
	}
	if s, ok := CoerceUnit(t); ok {
		return s
	}
	return Format(t.RawValue)
}

// Format renders a raw value. Numbers use their shortest decimal form and
// arrays become comma-separated lists.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = Format(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
	if n, ok := Number(v); ok {
		return FormatNumber(n)
	}
	return fmt.Sprint(v)
}

// Number reports whether v is numeric and returns it as a float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// FormatNumber formats n in its shortest decimal form.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
