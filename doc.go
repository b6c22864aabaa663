// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas is an immediate-mode drawing widget that runs the same
// render callback against two backends.
//
// The [SceneBackend] records each frame into a retained [scene.Scene] and
// rasterizes it with gg; the [SurfaceBackend] draws straight into a native
// 2D context, such as a browser <canvas> element. Both hand the callback a
// [Renderer] that speaks logical units and converts to device pixels on
// every call.
//
// # Quick Start
//
//	c := canvas.NewFunc(func(r canvas.Renderer, area canvas.ContentArea) {
//	    r.FillRect(canvas.Bounds(r).Inflate(-64, -64), colornames.Red)
//	})
//	w, err := canvas.NewSceneBackend(host).Transmogrify(c)
//	if err != nil {
//	    return err
//	}
//	defer w.Detach()
//	c.Refresh()
//
// # Clipping
//
// A Renderer owns exactly one clip rectangle. ClipBounds and the argument
// to ClipTo are in root-surface logical coordinates; ClipTo returns a new
// Renderer whose clip is the intersection and never changes the receiver.
// Coordinates given to drawing calls are relative to the clip origin.
// Drawing into an empty clip does nothing.
//
// # Redraw Scheduling
//
// Refresh commands and viewport resizes share one entry point. Any number
// of requests made before the host fires the next animation frame produce
// exactly one frame. A request made while a frame is drawing schedules
// another one.
//
// # Failure Policy
//
// Drawing never returns errors. A missing surface, an empty clip or an
// image that has not loaded yet makes a call a no-op; MeasureText returns
// zero metrics when no surface is available. Only attaching a canvas to a
// backend can fail.
package canvas
