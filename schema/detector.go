/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

// Detect inspects decoded document data and reports which leaf spelling it uses.
// The first leaf found decides; documents with no leaves default to TokensStudio.
func Detect(data map[string]any) Format {
	if f := detect(data); f != Unknown {
		return f
	}
	return TokensStudio
}

func detect(data map[string]any) Format {
	if _, ok := data["$value"]; ok {
		return DTCG
	}
	if v, ok := data["value"]; ok {
		if _, nested := v.(map[string]any); !nested {
			return TokensStudio
		}
	}
	for _, value := range data {
		child, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if f := detect(child); f != Unknown {
			return f
		}
	}
	return Unknown
}
