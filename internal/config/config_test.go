package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	want := []string{
		"basic-scene-light",
		"basic-scene-dark",
		"basic-surface-light",
		"basic-surface-dark",
	}
	if len(p.Snapshots) != len(want) {
		t.Fatalf("len(Snapshots) = %d, want %d", len(p.Snapshots), len(want))
	}
	for i, name := range want {
		s := p.Snapshots[i]
		if s.Name != name {
			t.Errorf("Snapshots[%d].Name = %q, want %q", i, s.Name, name)
		}
		if s.Width != DefaultWidth || s.Height != DefaultHeight || s.DevicePixelRatio != 1 {
			t.Errorf("Snapshots[%d] geometry = %vx%v@%v", i, s.Width, s.Height, s.DevicePixelRatio)
		}
	}
	if p.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", p.OutputDir, ".")
	}
}

func TestDecode(t *testing.T) {
	p, err := Decode(`
output_dir = "out"

[[snapshot]]
backend = "Surface"
theme = "dark"
device_pixel_ratio = 2

[[snapshot]]
name = "wide"
width = 640
height = 120
`)
	if err != nil {
		t.Fatal(err)
	}
	if p.OutputDir != "out" {
		t.Errorf("OutputDir = %q", p.OutputDir)
	}
	if len(p.Snapshots) != 2 {
		t.Fatalf("len(Snapshots) = %d, want 2", len(p.Snapshots))
	}
	first := p.Snapshots[0]
	if first.Backend != BackendSurface || first.Theme != ThemeDark {
		t.Errorf("first = %+v", first)
	}
	if first.Name != "basic-surface-dark@2x" || first.FileName() != "basic-surface-dark@2x.png" {
		t.Errorf("first name = %q, file = %q", first.Name, first.FileName())
	}
	second := p.Snapshots[1]
	if second.Name != "wide" || second.Width != 640 || second.Height != 120 {
		t.Errorf("second = %+v", second)
	}
	if second.Backend != BackendScene || second.Theme != ThemeLight {
		t.Errorf("second defaults = %q %q", second.Backend, second.Theme)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", `output_dir = `, false},
		{"empty", `output_dir = "x"`, true},
		{"unknown key", "[[snapshot]]\ncolour = \"red\"", true},
		{"unknown backend", "[[snapshot]]\nbackend = \"vulkan\"", true},
		{"unknown theme", "[[snapshot]]\ntheme = \"sepia\"", true},
		{"negative size", "[[snapshot]]\nwidth = -1", true},
		{"duplicate", "[[snapshot]]\n[[snapshot]]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Decode succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalidPlan); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidPlan) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	data := "output_dir = \"shots\"\n[[snapshot]]\ntheme = \"dark\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.OutputDir != "shots" || len(p.Snapshots) != 1 || p.Snapshots[0].Name != "basic-scene-dark" {
		t.Errorf("Load = %+v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
