// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command slate-demo builds a small slate scene headlessly, runs a few
// simulated pointer events through it, and writes the composited frame
// to an image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/slateui/slate/bitmap"
	"github.com/slateui/slate/events"
	"github.com/slateui/slate/ui"
)

func main() {
	out := flag.String("o", "slate-demo.png", "output image file")
	themeFile := flag.String("theme", "", "TOML theme file to load (optional)")
	imageFile := flag.String("image", "", "image file to display (optional)")
	watch := flag.Bool("watch", false, "watch the theme file and render on each change")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	if err := run(*out, *themeFile, *imageFile, *watch); err != nil {
		slog.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(out, themeFile, imageFile string, watch bool) error {
	m := ui.NewManager(image.Pt(640, 480))
	defer m.Close()
	if themeFile != "" {
		load := m.LoadTheme
		if watch {
			load = m.WatchTheme
		}
		if err := load(themeFile); err != nil {
			return err
		}
		slog.Info("theme loaded", "file", themeFile)
	}

	if err := buildScene(m, imageFile); err != nil {
		return err
	}
	simulate(m)
	m.Update(0.016)

	frame := image.NewRGBA(m.WindowRect())
	m.Draw(frame)
	if err := bitmap.Save(frame, out); err != nil {
		return err
	}
	slog.Info("frame written", "file", out, "size", m.WindowRect().Size())

	if watch && themeFile != "" {
		slog.Info("watching theme, ^C to quit", "file", themeFile)
		for range time.Tick(100 * time.Millisecond) {
			m.Update(0.1)
			if !m.NeedsRedraw() {
				continue
			}
			frame = image.NewRGBA(m.WindowRect())
			m.Draw(frame)
			if err := bitmap.Save(frame, out); err != nil {
				return err
			}
			slog.Info("frame written", "file", out)
		}
	}
	return nil
}

// buildScene places one of each element type in the window.
func buildScene(m *ui.Manager, imageFile string) error {
	src, err := demoImage(imageFile)
	if err != nil {
		return err
	}
	if _, err := ui.NewImage(m, image.Rect(20, 20, 320, 240), src); err != nil {
		return err
	}

	btn := ui.NewButton(m, image.Rect(20, 260, 140, 290), "press me")
	btn.On(events.Press, func(e *events.Event) {
		slog.Info("button pressed", "label", e.Data)
	})

	list := ui.NewSelectionList(m, image.Rect(340, 20, 500, 160),
		ui.Items("red", "green", "blue", "cyan", "magenta", "yellow"))
	list.On(events.Select, func(e *events.Event) {
		slog.Info("item selected", "item", e.Data)
	})

	dd, err := ui.NewDropDown(m, image.Rect(340, 180, 500, 210),
		[]string{"small", "medium", "large"}, "medium")
	if err != nil {
		return err
	}
	dd.On(events.Change, func(e *events.Event) {
		slog.Info("option changed", "option", e.Data)
	})
	return nil
}

// maxImageDim caps the largest dimension of a loaded demo image.
const maxImageDim = 512

// demoImage loads the given file, or synthesizes a gradient if none
// was given.
func demoImage(filename string) (image.Image, error) {
	if filename != "" {
		im, f, err := bitmap.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", filename, err)
		}
		slog.Info("image loaded", "file", filename, "format", f,
			"size", im.Bounds().Size())
		// cap oversized inputs before handing them to the element
		if sz := im.Bounds().Size(); sz.X > maxImageDim || sz.Y > maxImageDim {
			im = bitmap.ResizeMax(im, maxImageDim)
			slog.Info("image downsized", "size", im.Bounds().Size())
		}
		return im, nil
	}
	im := image.NewNRGBA(image.Rect(0, 0, 150, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 150; x++ {
			im.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / 149),
				G: uint8(y * 255 / 119),
				B: 128,
				A: 255,
			})
		}
	}
	return im, nil
}

// simulate exercises the scene with a few pointer events.
func simulate(m *ui.Manager) {
	presses := []image.Point{
		{X: 80, Y: 275},  // the button
		{X: 400, Y: 40},  // the first list item
		{X: 490, Y: 195}, // the drop down arrow
	}
	for _, p := range presses {
		if !m.Process(events.NewPointer(events.Press, p)) {
			slog.Warn("event not consumed", "pos", p)
		}
	}
}
