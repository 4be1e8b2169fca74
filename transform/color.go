/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"strconv"

	"bennypowers.dev/brandtokens/token"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ColorCSS normalizes a color token's literal value to #rrggbb, or to
// rgba() when it is translucent. Strings that do not parse as CSS colors
// are left to later transforms. Object colors with r, g, b and optional
// a channels in 0..1 are accepted too.
func ColorCSS(t *token.Token) (string, bool) {
	if t.Type != token.TypeColor {
		return "", false
	}
	switch v := t.RawValue.(type) {
	case string:
		c, err := csscolorparser.Parse(v)
		if err != nil {
			return "", false
		}
		return cssColor(colorful.Color{R: c.R, G: c.G, B: c.B}, c.A), true
	case map[string]any:
		r, rok := Number(v["r"])
		g, gok := Number(v["g"])
		b, bok := Number(v["b"])
		if !rok || !gok || !bok {
			return "", false
		}
		a, ok := Number(v["a"])
		if !ok {
			a = 1
		}
		return cssColor(colorful.Color{R: r, G: g, B: b}, a), true
	}
	return "", false
}

func cssColor(c colorful.Color, alpha float64) string {
	c = c.Clamped()
	if alpha >= 1 {
		return c.Hex()
	}
	r, g, b := c.RGB255()
	a := strconv.FormatFloat(max(alpha, 0), 'f', -1, 64)
	if len(a) > 6 {
		a = strconv.FormatFloat(max(alpha, 0), 'f', 4, 64)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, a)
}
