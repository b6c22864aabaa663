// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// CSSColor formats c as a CSS rgba() color. A nil color is opaque black.
func CSSColor(c color.Color) string {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha := strconv.FormatFloat(float64(n.A)/255, 'f', -1, 64)
	if len(alpha) > 5 {
		alpha = strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, alpha)
}

// CSSFont formats a CSS font shorthand for family at size pixels.
// Families containing spaces are quoted; generic families are not.
func CSSFont(family string, size float64) string {
	if family == "" {
		family = "sans-serif"
	}
	if strings.ContainsAny(family, " ") && !strings.HasPrefix(family, `"`) {
		family = strconv.Quote(family)
	}
	return strconv.FormatFloat(size, 'f', -1, 64) + "px " + family
}
