// Package config reads snapshot plans for the demo command.
//
// A plan is a TOML document listing the snapshots to render:
//
//	output_dir = "snapshots"
//
//	[[snapshot]]
//	example = "basic"
//	backend = "surface"
//	theme = "dark"
//	width = 320
//	height = 240
//	device_pixel_ratio = 2
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backends a snapshot can be rendered with.
const (
	BackendScene   = "scene"
	BackendSurface = "surface"
)

// Themes a snapshot can be rendered in.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default snapshot geometry, matching the size of the basic example.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// ErrInvalidPlan is wrapped by every validation error.
var ErrInvalidPlan = errors.New("config: invalid plan")

// Snapshot describes one rendered image.
type Snapshot struct {
	Name             string  `toml:"name"`
	Example          string  `toml:"example"`
	Backend          string  `toml:"backend"`
	Theme            string  `toml:"theme"`
	Width            float64 `toml:"width"`
	Height           float64 `toml:"height"`
	DevicePixelRatio float64 `toml:"device_pixel_ratio"`
}

// FileName returns the PNG file name of the snapshot.
func (s Snapshot) FileName() string {
	return s.Name + ".png"
}

// Plan is a list of snapshots and where to write them.
type Plan struct {
	OutputDir string     `toml:"output_dir"`
	Snapshots []Snapshot `toml:"snapshot"`
}

// Default returns the plan used when no file is given: the basic example
// on both backends in both themes.
func Default() Plan {
	var p Plan
	for _, backend := range []string{BackendScene, BackendSurface} {
		for _, theme := range []string{ThemeLight, ThemeDark} {
			p.Snapshots = append(p.Snapshots, Snapshot{Example: "basic", Backend: backend, Theme: theme})
		}
	}
	if err := p.normalize(); err != nil {
		panic(err)
	}
	return p
}

// Decode parses a plan from TOML text. Unknown keys are an error.
func Decode(data string) (Plan, error) {
	var p Plan
	md, err := toml.Decode(data, &p)
	if err != nil {
		return Plan{}, fmt.Errorf("config: decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Plan{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidPlan, strings.Join(names, ", "))
	}
	if err := p.normalize(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Load reads a plan from a TOML file.
func Load(path string) (Plan, error) {
	var p Plan
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Plan{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Plan{}, fmt.Errorf("%w: %s: unknown key %s", ErrInvalidPlan, path, keys[0])
	}
	if err := p.normalize(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// normalize fills defaults and validates every snapshot.
func (p *Plan) normalize() error {
	if p.OutputDir == "" {
		p.OutputDir = "."
	}
	if len(p.Snapshots) == 0 {
		return fmt.Errorf("%w: no snapshots", ErrInvalidPlan)
	}
	seen := make(map[string]bool, len(p.Snapshots))
	for i := range p.Snapshots {
		s := &p.Snapshots[i]
		if s.Example == "" {
			s.Example = "basic"
		}
		s.Backend = strings.ToLower(s.Backend)
		if s.Backend == "" {
			s.Backend = BackendScene
		}
		s.Theme = strings.ToLower(s.Theme)
		if s.Theme == "" {
			s.Theme = ThemeLight
		}
		if s.Width == 0 {
			s.Width = DefaultWidth
		}
		if s.Height == 0 {
			s.Height = DefaultHeight
		}
		if s.DevicePixelRatio == 0 {
			s.DevicePixelRatio = 1
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s-%s-%s", s.Example, s.Backend, s.Theme)
			if s.DevicePixelRatio != 1 {
				s.Name += fmt.Sprintf("@%gx", s.DevicePixelRatio)
			}
		}

		switch {
		case s.Backend != BackendScene && s.Backend != BackendSurface:
			return fmt.Errorf("%w: snapshot %q: unknown backend %q", ErrInvalidPlan, s.Name, s.Backend)
		case s.Theme != ThemeLight && s.Theme != ThemeDark:
			return fmt.Errorf("%w: snapshot %q: unknown theme %q", ErrInvalidPlan, s.Name, s.Theme)
		case s.Width < 0 || s.Height < 0:
			return fmt.Errorf("%w: snapshot %q: negative size %vx%v", ErrInvalidPlan, s.Name, s.Width, s.Height)
		case s.DevicePixelRatio < 0:
			return fmt.Errorf("%w: snapshot %q: negative device pixel ratio", ErrInvalidPlan, s.Name)
		case seen[s.Name]:
			return fmt.Errorf("%w: duplicate snapshot %q", ErrInvalidPlan, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
