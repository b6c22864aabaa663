// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sort"
	"sync"
)

// ElementFactory creates an element for a document.
type ElementFactory func(id, class, style string) (Element, error)

// Registry is an in-memory Document. Elements are created by a factory
// and resolved by id. A Registry is safe for concurrent use.
//
// Example:
//
//	doc := surface.NewRegistry(nil)
//	el, err := doc.CreateElement("canvas-1", "gooey-canvas", "")
//	// later, on every draw:
//	el, ok := doc.Lookup("canvas-1")
type Registry struct {
	mu       sync.RWMutex
	elements map[string]Element
	factory  ElementFactory
}

// NewRegistry creates an empty registry. A nil factory creates Bitmap
// elements with a zero client size.
func NewRegistry(factory ElementFactory) *Registry {
	if factory == nil {
		factory = func(id, class, style string) (Element, error) {
			return NewBitmap(id, class, style), nil
		}
	}
	return &Registry{
		elements: make(map[string]Element),
		factory:  factory,
	}
}

// CreateElement creates and registers a new element.
func (r *Registry) CreateElement(id, class, style string) (Element, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.elements[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	el, err := r.factory(id, class, style)
	if err != nil {
		return nil, fmt.Errorf("surface: create %q: %w", id, err)
	}
	r.elements[id] = el
	return el, nil
}

// Lookup returns the element registered under id.
func (r *Registry) Lookup(id string) (Element, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	el, ok := r.elements[id]
	return el, ok
}

// Remove unregisters the element with the given id. Removed Bitmap
// elements stop handing out drawing contexts. It reports whether an
// element was removed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	el, ok := r.elements[id]
	delete(r.elements, id)
	r.mu.Unlock()

	if b, isBitmap := el.(*Bitmap); isBitmap {
		b.detach()
	}
	return ok
}

// IDs returns the registered element ids in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.elements))
	for id := range r.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Each calls fn for every element in id order.
func (r *Registry) Each(fn func(Element)) {
	for _, id := range r.IDs() {
		if el, ok := r.Lookup(id); ok {
			fn(el)
		}
	}
}
