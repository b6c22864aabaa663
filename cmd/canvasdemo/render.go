package main

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/headless"
	"github.com/gogpu/canvas/internal/config"
)

// maxFrames bounds how long a snapshot may keep requesting frames.
const maxFrames = 8

// capture renders one snapshot in a fresh headless window.
func capture(s config.Snapshot) (*image.RGBA, error) {
	newCanvas, ok := examples[s.Example]
	if !ok {
		return nil, fmt.Errorf("unknown example %q", s.Example)
	}
	theme := canvas.ThemeLight
	if s.Theme == config.ThemeDark {
		theme = canvas.ThemeDark
	}

	win, err := headless.New(s.Width, s.Height,
		headless.WithDevicePixelRatio(s.DevicePixelRatio),
		headless.WithTheme(theme),
	)
	if err != nil {
		return nil, err
	}
	defer win.Close()

	var w *canvas.Widget
	switch s.Backend {
	case config.BackendSurface:
		w, _, err = canvas.NewSurfaceBackend(win, win.Document()).Transmogrify(newCanvas())
	default:
		w, err = canvas.NewSceneBackend(win).Transmogrify(newCanvas())
	}
	if err != nil {
		return nil, err
	}
	defer w.Detach()

	win.RunUntilIdle(maxFrames)
	return win.Screenshot(w.ID())
}

// renderSnapshot captures s and writes it to path as a PNG.
func renderSnapshot(s config.Snapshot, path string) error {
	img, err := capture(s)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	return dc.SavePNG(path)
}
