// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Theme is the light or dark appearance reported by the host.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String returns "Light" or "Dark".
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return fmt.Sprintf("Theme(%d)", uint8(t))
	}
}

// Background returns the window background color of the theme.
func (t Theme) Background() color.Color {
	if t == ThemeDark {
		return colornames.Black
	}
	return colornames.White
}

// Foreground returns the default text color of the theme.
func (t Theme) Foreground() color.Color {
	if t == ThemeDark {
		return colornames.White
	}
	return colornames.Black
}
