// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas/geom"
	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/canvas/surface"
)

// Style is the inline style of canvas elements; the element fills the box
// its container lays out.
const Style = "display: block; width: 100%; height: 100%;"

// SurfaceBackend attaches canvases to elements of a surface.Document and
// draws directly into their 2D contexts.
type SurfaceBackend struct {
	host Host
	doc  surface.Document
	opts options
}

// NewSurfaceBackend returns a backend creating elements in doc.
func NewSurfaceBackend(host Host, doc surface.Document, opts ...Option) *SurfaceBackend {
	return &SurfaceBackend{host: host, doc: doc, opts: applyOptions(opts)}
}

// Document returns the document elements are created in.
func (b *SurfaceBackend) Document() surface.Document {
	return b.doc
}

// Transmogrify creates the element for c, requests its first frame and
// redraws it whenever the host resizes.
func (b *SurfaceBackend) Transmogrify(c *Canvas) (*Widget, surface.Element, error) {
	switch {
	case c == nil:
		return nil, nil, ErrNilCanvas
	case b.host == nil:
		return nil, nil, ErrNilHost
	case b.doc == nil:
		return nil, nil, ErrNilDocument
	}

	w := newWidget(c, b.host, b.drawFrame)
	w.style = Style
	if err := c.attach(w); err != nil {
		return nil, nil, err
	}
	el, err := b.doc.CreateElement(w.id.CSSID(), Class, w.style)
	if err != nil {
		c.detach(w)
		return nil, nil, fmt.Errorf("canvas: create element: %w", err)
	}
	if bm, ok := el.(*surface.Bitmap); ok {
		bm.SetFonts(b.opts.fonts)
	}
	w.start()
	return w, el, nil
}

// drawFrame sizes the element's backing store to its client size times the
// device pixel ratio, clears it and renders one frame.
func (b *SurfaceBackend) drawFrame(w *Widget) {
	el, ok := b.doc.Lookup(w.id.CSSID())
	if !ok {
		logging.L().Debug("canvas: element gone, frame skipped", "id", w.id)
		return
	}
	dpr := b.host.DevicePixelRatio()
	cw, ch := el.ClientSize()
	pw := int(math.Round(max(cw, 0) * dpr))
	ph := int(math.Round(max(ch, 0) * dpr))

	if cur, curH := el.PixelSize(); cur != pw || curH != ph {
		el.SetPixelSize(pw, ph)
	} else if ctx, ok := el.Context2D(); ok {
		ctx.ClearRect(0, 0, float64(pw), float64(ph))
	}
	if b.opts.clear != nil {
		if ctx, ok := el.Context2D(); ok {
			ctx.Save()
			ctx.SetFillColor(b.opts.clear)
			ctx.FillRect(0, 0, float64(pw), float64(ph))
			ctx.Restore()
		}
	}

	clip := geom.RectFromSize(geom.Sz[geom.Pixels](float64(pw), float64(ph)))
	w.render(NewSurfaceRenderer(b.doc, w.id, clip, geom.Uniform(dpr), b.host.Theme()))
}
