// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface models a native 2D drawing surface: a document of
// elements, each exposing an HTML-canvas shaped drawing context.
//
// The browser build binds these interfaces to the DOM. Everywhere else a
// [Registry] holds [Bitmap] elements rasterized in memory with gg, which
// lets the native-surface canvas backend run headless and under test.
//
// Drawing context coordinates are backing-store pixels. Clipping is
// rectangular: Clip intersects the current clip with the bounding box of
// the rectangles added to the current path.
package surface
