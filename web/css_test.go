// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package web

import (
	"image/color"
	"testing"
)

func TestCSSColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want string
	}{
		{"nil", nil, "rgba(0, 0, 0, 1)"},
		{"red", color.RGBA{255, 0, 0, 255}, "rgba(255, 0, 0, 1)"},
		{"transparent", color.Transparent, "rgba(0, 0, 0, 0)"},
		{"half", color.NRGBA{0, 128, 255, 128}, "rgba(0, 128, 255, 0.502)"},
		{"premultiplied", color.RGBA{64, 0, 0, 128}, "rgba(127, 0, 0, 0.502)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CSSColor(tt.c); got != tt.want {
				t.Errorf("CSSColor(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestCSSFont(t *testing.T) {
	tests := []struct {
		family string
		size   float64
		want   string
	}{
		{"", 14, "14px sans-serif"},
		{"serif", 10.5, "10.5px serif"},
		{"Go Mono", 12, `12px "Go Mono"`},
		{`"Go Mono"`, 12, `12px "Go Mono"`},
	}
	for _, tt := range tests {
		if got := CSSFont(tt.family, tt.size); got != tt.want {
			t.Errorf("CSSFont(%q, %v) = %q, want %q", tt.family, tt.size, got, tt.want)
		}
	}
}
