// Package fonts maps font family names to gg/text faces.
//
// The rasterizer backends draw and measure text with faces from a
// [Registry]. The browser backend only uses the family name, which is
// passed through to the CSS font shorthand.
package fonts

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/canvas/internal/logging"
	"github.com/gogpu/canvas/internal/lru"
)

// Generic family names understood by every backend.
const (
	SansSerif = "sans-serif"
	Monospace = "monospace"
)

// MaxFaces bounds the faces a Registry keeps cached.
const MaxFaces = 64

// ErrEmptyFamily is returned when registering a font without a family name.
var ErrEmptyFamily = errors.New("fonts: empty family name")

type faceKey struct {
	family string
	size   float64
}

// Registry resolves family names to faces. The most recently used faces
// are cached per family and pixel size. A Registry is safe for concurrent
// use.
type Registry struct {
	mu       sync.RWMutex
	sources  map[string]*text.FontSource
	faces    *lru.Cache[faceKey, text.Face]
	fallback string
}

// NewRegistry returns an empty registry that falls back to SansSerif for
// unknown families.
func NewRegistry() *Registry {
	return &Registry{
		sources:  make(map[string]*text.FontSource),
		faces:    lru.New[faceKey, text.Face](MaxFaces),
		fallback: SansSerif,
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry preloaded with the Go fonts:
// Go Regular as SansSerif and Go Mono as Monospace.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for family, data := range map[string][]byte{
			SansSerif: goregular.TTF,
			Monospace: gomono.TTF,
		} {
			if err := defaultReg.Register(family, data); err != nil {
				logging.L().Warn("fonts: default family unavailable", "family", family, "err", err)
			}
		}
	})
	return defaultReg
}

// Register parses font data and makes it available under family.
// Registering an existing family replaces it.
func (r *Registry) Register(family string, data []byte) error {
	if family == "" {
		return ErrEmptyFamily
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("fonts: parse %q: %w", family, err)
	}
	r.RegisterSource(family, src)
	return nil
}

// RegisterSource makes an already parsed source available under family.
func (r *Registry) RegisterSource(family string, src *text.FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[family] = src
	r.faces.RemoveFunc(func(k faceKey) bool { return k.family == family })
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Face returns a face for family at size pixels. Unknown families use the
// fallback family. It reports false when neither is registered or size is
// not positive.
func (r *Registry) Face(family string, size float64) (text.Face, bool) {
	if size <= 0 {
		return nil, false
	}
	if family == "" {
		family = r.fallback
	}

	r.mu.RLock()
	src, known := r.sources[family]
	if !known {
		family = r.fallback
		src, known = r.sources[family]
	}
	r.mu.RUnlock()
	if !known {
		return nil, false
	}

	face := r.faces.GetOrCreate(faceKey{family, size}, func() text.Face {
		return src.Face(size)
	})
	return face, true
}
