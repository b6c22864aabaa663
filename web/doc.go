// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package web runs canvases in a browser.
//
// Under GOOS=js GOARCH=wasm the package binds surface.Document to the DOM:
// every widget becomes a <canvas> element looked up by its CSS id, and
// drawing goes through the element's CanvasRenderingContext2D. [Host]
// supplies requestAnimationFrame, window.devicePixelRatio, resize
// notifications and the prefers-color-scheme theme.
//
//	host := web.NewHost()
//	backend := canvas.NewSurfaceBackend(host, web.NewDocument(web.Body()))
//	_, _, err := backend.Transmogrify(canvas.NewFunc(draw))
//
// The CSS helpers build on every platform.
package web
