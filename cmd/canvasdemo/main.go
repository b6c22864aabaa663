// Command canvasdemo renders the canvas examples headlessly and writes PNG
// snapshots of them.
//
// Without arguments it renders the basic example on the scene and surface
// backends in the light and dark themes:
//
//	canvasdemo -o snapshots
//	canvasdemo --plan plan.toml
//	canvasdemo --example shapes --backend surface --scale 2
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/internal/config"
)

type cli struct {
	Plan    string  `short:"p" type:"existingfile" help:"TOML snapshot plan to render instead of the flags below."`
	Output  string  `short:"o" help:"Directory to write snapshots to. Overrides the plan's output_dir."`
	Example string  `short:"e" default:"basic" help:"Example to render."`
	Backend string  `short:"b" enum:"all,scene,surface" default:"all" help:"Backend to render with (all, scene, surface)."`
	Theme   string  `short:"t" enum:"all,light,dark" default:"all" help:"Theme to render in (all, light, dark)."`
	Width   float64 `default:"320" help:"Logical width."`
	Height  float64 `default:"240" help:"Logical height."`
	Scale   float64 `short:"s" default:"1" help:"Device pixel ratio."`
	List    bool    `short:"l" help:"List the examples and exit."`
	Verbose bool    `short:"v" help:"Log frame scheduling and rendering."`
}

func main() {
	var flags cli
	parser := kong.Must(&flags,
		kong.Name("canvasdemo"),
		kong.Description("Render canvas examples to PNG snapshots."),
	)
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if flags.Verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if flags.List {
		for _, name := range exampleNames() {
			fmt.Println(name)
		}
		return
	}

	plan, err := flags.plan()
	if err != nil {
		log.Fatalln(err)
	}
	if err := os.MkdirAll(plan.OutputDir, 0o755); err != nil {
		log.Fatalln(err)
	}
	for _, s := range plan.Snapshots {
		path := filepath.Join(plan.OutputDir, s.FileName())
		if err := renderSnapshot(s, path); err != nil {
			log.Fatalf("%s: %v", s.Name, err)
		}
		log.Printf("Snapshot saved to %s", path)
	}
}

// plan builds the snapshot plan from the plan file or the flags.
func (c *cli) plan() (config.Plan, error) {
	var (
		plan config.Plan
		err  error
	)
	if c.Plan != "" {
		plan, err = config.Load(c.Plan)
	} else {
		plan, err = config.Decode(c.planTOML())
	}
	if err != nil {
		return config.Plan{}, err
	}
	if c.Output != "" {
		plan.OutputDir = c.Output
	}
	return plan, nil
}

// planTOML expands the backend and theme flags into a plan document.
func (c *cli) planTOML() string {
	backends := []string{config.BackendScene, config.BackendSurface}
	if c.Backend != "all" {
		backends = []string{c.Backend}
	}
	themes := []string{config.ThemeLight, config.ThemeDark}
	if c.Theme != "all" {
		themes = []string{c.Theme}
	}

	doc := ""
	for _, backend := range backends {
		for _, theme := range themes {
			doc += fmt.Sprintf("[[snapshot]]\nexample = %q\nbackend = %q\ntheme = %q\nwidth = %g\nheight = %g\ndevice_pixel_ratio = %g\n\n",
				c.Example, backend, theme, c.Width, c.Height, c.Scale)
		}
	}
	return doc
}
