// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present uploads committed canvas frames to a GPU window.
//
// A [Presenter] is the presentation sink of a scene host: the host hands it
// every committed frame through [Presenter.Present], and the window's draw
// callback calls [Presenter.RenderTo] with the texture drawer of the current
// frame. Only the latest frame of each widget is kept.
//
//	p, err := present.New(app.GPUContextProvider())
//	...
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = p.RenderTo(dc.AsTextureDrawer())
//	})
package present

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

var (
	// ErrNilProvider is returned by New when the device provider is nil.
	ErrNilProvider = errors.New("present: nil device provider")

	// ErrClosed is returned by RenderTo after Close.
	ErrClosed = errors.New("present: presenter is closed")

	// ErrNilDrawer is returned by RenderTo when the texture drawer is nil.
	ErrNilDrawer = errors.New("present: nil texture drawer")
)

// entry is the GPU-side state of one widget.
type entry struct {
	frame   image.Image // latest committed frame, nil once uploaded
	surface *ggcanvas.Canvas
	x, y    float32
}

// Presenter keeps the latest frame of every widget and draws them to a
// window. It is safe for concurrent use.
type Presenter struct {
	mu       sync.Mutex
	provider gpucontext.DeviceProvider
	entries  map[canvas.WidgetID]*entry
	uploads  uint64
	closed   bool
}

// New returns a Presenter bound to the GPU device of provider.
func New(provider gpucontext.DeviceProvider) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Presenter{
		provider: provider,
		entries:  make(map[canvas.WidgetID]*entry),
	}, nil
}

// Present records frame as the latest frame of widget id. It matches the
// Present method of canvas.SceneHost, so hosts can forward to it directly.
// Frames with an empty bounds are ignored.
func (p *Presenter) Present(id canvas.WidgetID, frame image.Image) {
	if frame == nil || frame.Bounds().Empty() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	e := p.entries[id]
	if e == nil {
		e = &entry{}
		p.entries[id] = e
	}
	e.frame = frame
}

// SetPosition sets where widget id is drawn in window pixels.
func (p *Presenter) SetPosition(id canvas.WidgetID, x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := p.entries[id]
	if e == nil {
		e = &entry{}
		p.entries[id] = e
	}
	e.x, e.y = x, y
}

// Forget releases the GPU resources of widget id.
func (p *Presenter) Forget(id canvas.WidgetID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.entries[id]; ok {
		if e.surface != nil {
			_ = e.surface.Close()
		}
		delete(p.entries, id)
	}
}

// Uploads returns how many frames have been copied into GPU canvases.
func (p *Presenter) Uploads() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uploads
}

// RenderTo uploads pending frames and draws every widget that has one,
// in widget creation order.
func (p *Presenter) RenderTo(dc gpucontext.TextureDrawer) error {
	if dc == nil {
		return ErrNilDrawer
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	ids := make([]canvas.WidgetID, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := p.entries[id]
		if e.frame != nil {
			if err := p.upload(e); err != nil {
				return fmt.Errorf("present: widget %d: %w", id, err)
			}
		}
		if e.surface == nil {
			continue
		}
		if err := e.surface.RenderToPosition(dc, e.x, e.y); err != nil {
			return fmt.Errorf("present: widget %d: %w", id, err)
		}
	}
	return nil
}

// upload copies the pending frame of e into its GPU canvas, creating or
// resizing the canvas to the frame size.
func (p *Presenter) upload(e *entry) error {
	b := e.frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if e.surface == nil {
		c, err := ggcanvas.New(p.provider, w, h)
		if err != nil {
			return err
		}
		e.surface = c
	} else if err := e.surface.Resize(w, h); err != nil {
		return err
	}

	buf := gg.ImageBufFromImage(e.frame)
	err := e.surface.Draw(func(dc *gg.Context) {
		dc.Clear()
		dc.DrawImage(buf, 0, 0)
	})
	if err != nil {
		return err
	}
	e.frame = nil
	p.uploads++
	logging.L().Debug("present: frame uploaded", "width", w, "height", h)
	return nil
}

// Close releases every GPU canvas. It is idempotent.
func (p *Presenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	for id, e := range p.entries {
		if e.surface != nil {
			_ = e.surface.Close()
		}
		delete(p.entries, id)
	}
	return nil
}
