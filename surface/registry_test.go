// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryCreateAndLookup(t *testing.T) {
	r := NewRegistry(nil)

	el, err := r.CreateElement("c1", "gooey-canvas", "width: 100%")
	if err != nil {
		t.Fatalf("CreateElement: %v", err)
	}
	if el.ID() != "c1" || el.Class() != "gooey-canvas" || el.Style() != "width: 100%" {
		t.Errorf("element = %q %q %q", el.ID(), el.Class(), el.Style())
	}

	got, ok := r.Lookup("c1")
	if !ok || got != el {
		t.Fatal("Lookup did not return the created element")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup of unknown id should fail")
	}
}

func TestRegistryCreateErrors(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.CreateElement("", "", ""); !errors.Is(err, ErrEmptyID) {
		t.Errorf("empty id: err = %v, want ErrEmptyID", err)
	}
	if _, err := r.CreateElement("a", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := r.CreateElement("a", "", ""); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate id: err = %v, want ErrDuplicateID", err)
	}

	boom := errors.New("boom")
	failing := NewRegistry(func(id, class, style string) (Element, error) {
		return nil, boom
	})
	if _, err := failing.CreateElement("x", "", ""); !errors.Is(err, boom) {
		t.Errorf("factory error not wrapped: %v", err)
	}
	if _, ok := failing.Lookup("x"); ok {
		t.Error("failed element must not be registered")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(nil)
	el, _ := r.CreateElement("gone", "", "")
	ctxBefore, ok := el.Context2D()
	if !ok || ctxBefore == nil {
		t.Fatal("fresh bitmap should have a context")
	}

	if !r.Remove("gone") {
		t.Fatal("Remove returned false")
	}
	if r.Remove("gone") {
		t.Error("second Remove should return false")
	}
	if _, ok := r.Lookup("gone"); ok {
		t.Error("removed element still resolvable")
	}
	if _, ok := el.Context2D(); ok {
		t.Error("removed bitmap should not hand out a context")
	}
}

func TestRegistryIDs(t *testing.T) {
	r := NewRegistry(nil)
	for _, id := range []string{"b", "c", "a"} {
		if _, err := r.CreateElement(id, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	if got := r.IDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("IDs() = %v", got)
	}

	var seen []string
	r.Each(func(el Element) { seen = append(seen, el.ID()) })
	if !slices.Equal(seen, []string{"a", "b", "c"}) {
		t.Errorf("Each order = %v", seen)
	}
}
