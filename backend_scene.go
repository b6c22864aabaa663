// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"math"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/scene"
)

// SceneBackend attaches canvases to a SceneHost. Each frame is recorded
// into a scene, rasterized and handed to SceneHost.Present.
type SceneBackend struct {
	host SceneHost
	opts options
}

// NewSceneBackend returns a backend for host.
func NewSceneBackend(host SceneHost, opts ...Option) *SceneBackend {
	return &SceneBackend{host: host, opts: applyOptions(opts)}
}

// Transmogrify attaches c, requests its first frame and redraws it
// whenever the host resizes.
func (b *SceneBackend) Transmogrify(c *Canvas) (*Widget, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if b.host == nil {
		return nil, ErrNilHost
	}
	sc := scene.New(0, 0, geom.Uniform(1), b.opts.fonts)
	w := newWidget(c, b.host, func(w *Widget) { b.drawFrame(w, sc) })
	if err := c.attach(w); err != nil {
		return nil, err
	}
	w.start()
	return w, nil
}

// MeasureContent returns the size the canvas wants under constraints.
// Axes that are unconstrained (zero, negative, NaN or infinite) take the
// viewport size.
func (b *SceneBackend) MeasureContent(constraints geom.LogicalSize) geom.LogicalSize {
	size := constraints
	if (bounded(size.Width) && bounded(size.Height)) || b.host == nil {
		return size.ClampNonNegative()
	}
	w, h, ok := b.host.ViewportSize()
	var viewport geom.LogicalSize
	if ok {
		scale := geom.Uniform(b.host.DevicePixelRatio())
		viewport = scale.SizeToScaled(geom.Sz[geom.Pixels](float64(w), float64(h)))
	}
	if !bounded(size.Width) {
		size.Width = viewport.Width
	}
	if !bounded(size.Height) {
		size.Height = viewport.Height
	}
	return size.ClampNonNegative()
}

func bounded(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// drawFrame measures the viewport, records one frame into sc, rasterizes
// it and presents it.
func (b *SceneBackend) drawFrame(w *Widget, sc *scene.Scene) {
	pw, ph, ok := b.host.ViewportSize()
	if !ok {
		logging.L().Debug("canvas: no viewport, frame skipped", "id", w.id)
		return
	}
	pw, ph = max(pw, 0), max(ph, 0)
	sc.Reset(pw, ph, geom.Uniform(b.host.DevicePixelRatio()))

	w.render(NewSceneRenderer(sc.Root(), b.host.Theme()))

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	if b.opts.clear != nil {
		raster.NewPainter(img, sc.Fonts()).Clear(b.opts.clear)
	}
	sc.Rasterize(img)
	b.host.Present(w.id, img)
}
