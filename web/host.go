// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"sync"
	"syscall/js"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/logging"
)

// Host is the browser window as a canvas.Host.
type Host struct {
	window js.Value
	dark   js.Value // MediaQueryList for prefers-color-scheme: dark
}

// NewHost returns a Host bound to the global window.
func NewHost() *Host {
	w := js.Global()
	h := &Host{window: w, dark: js.Undefined()}
	if mm := w.Get("matchMedia"); mm.Type() == js.TypeFunction {
		h.dark = w.Call("matchMedia", "(prefers-color-scheme: dark)")
	}
	return h
}

// RequestAnimationFrame runs fn before the next repaint.
func (h *Host) RequestAnimationFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	h.window.Call("requestAnimationFrame", cb)
}

// DevicePixelRatio returns window.devicePixelRatio, or 1 when unset.
func (h *Host) DevicePixelRatio() float64 {
	v := h.window.Get("devicePixelRatio")
	if v.Type() != js.TypeNumber || v.Float() <= 0 {
		return 1
	}
	return v.Float()
}

// Theme reports ThemeDark when the page prefers a dark color scheme.
func (h *Host) Theme() canvas.Theme {
	if h.dark.Type() == js.TypeObject && h.dark.Get("matches").Truthy() {
		return canvas.ThemeDark
	}
	return canvas.ThemeLight
}

// OnResize calls fn on every window resize and color scheme change.
func (h *Host) OnResize(fn func()) (remove func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	h.window.Call("addEventListener", "resize", cb)
	hasScheme := h.dark.Type() == js.TypeObject
	if hasScheme {
		h.dark.Call("addEventListener", "change", cb)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.window.Call("removeEventListener", "resize", cb)
			if hasScheme {
				h.dark.Call("removeEventListener", "change", cb)
			}
			cb.Release()
			logging.L().Debug("web: resize listener removed")
		})
	}
}
