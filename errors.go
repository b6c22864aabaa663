// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "errors"

// Errors returned when attaching a canvas to a backend.
var (
	// ErrAlreadyAttached is returned when transmogrifying a canvas that is
	// still attached elsewhere.
	ErrAlreadyAttached = errors.New("canvas: already attached")

	// ErrNilCanvas is returned when transmogrifying a nil canvas.
	ErrNilCanvas = errors.New("canvas: nil canvas")

	// ErrNilHost is returned by backends created without a host.
	ErrNilHost = errors.New("canvas: nil host")

	// ErrNilDocument is returned by a surface backend without a document.
	ErrNilDocument = errors.New("canvas: nil document")
)
