// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"sync"

	"github.com/gogpu/canvas/geom"
)

// Image is a handle to an asset that may still be loading. Renderers draw
// it only once a surface has been set. Decoding is up to the caller.
//
// An Image is safe for concurrent use.
type Image struct {
	mu      sync.RWMutex
	surface image.Image
}

// NewImage returns a handle without a surface.
func NewImage() *Image {
	return &Image{}
}

// ImageFrom returns a loaded handle.
func ImageFrom(img image.Image) *Image {
	return &Image{surface: img}
}

// SetSurface marks the image as loaded with img. A nil img unloads it.
func (i *Image) SetSurface(img image.Image) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.surface = img
}

// Surface returns the decoded image, if loaded.
func (i *Image) Surface() (image.Image, bool) {
	if i == nil {
		return nil, false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.surface, i.surface != nil
}

// Loaded reports whether a surface is available.
func (i *Image) Loaded() bool {
	_, ok := i.Surface()
	return ok
}

// Size returns the natural size in logical units: one logical unit per
// image pixel. Unloaded images have zero size.
func (i *Image) Size() geom.LogicalSize {
	img, ok := i.Surface()
	if !ok {
		return geom.LogicalSize{}
	}
	b := img.Bounds()
	return geom.Sz[geom.Scaled](float64(b.Dx()), float64(b.Dy()))
}
