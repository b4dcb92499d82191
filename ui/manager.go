// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/slateui/slate/events"
	"github.com/slateui/slate/theme"
	"golang.org/x/image/draw"
)

// Manager owns a tree of elements: the window-sized root container,
// the theme, and the flat compositing list. All mutating calls on a
// manager and its elements must come from a single goroutine; the only
// internal goroutine is the theme watcher, whose reloads are applied
// on the next [Manager.Update].
type Manager struct {
	windowRect  image.Rectangle
	root        *Container
	theme       *theme.Theme
	watcher     *theme.Watcher
	pending     atomic.Pointer[theme.Theme]
	elements    []Element
	capture     Element
	needsRender bool
}

// NewManager creates a manager for a window of the given size, with
// the built-in default theme.
func NewManager(windowSize image.Point) *Manager {
	m := &Manager{
		windowRect: image.Rectangle{Max: windowSize},
		theme:      theme.New(),
	}
	m.root = newRootContainer(m)
	return m
}

// Root returns the root container that parentless elements are
// placed in.
func (m *Manager) Root() *Container { return m.root }

// WindowRect returns the window rectangle the root container covers.
func (m *Manager) WindowRect() image.Rectangle { return m.windowRect }

// Theme returns the current theme.
func (m *Manager) Theme() *theme.Theme { return m.theme }

// SetTheme installs a theme and rebuilds all elements from it.
func (m *Manager) SetTheme(th *theme.Theme) {
	m.theme = th
	m.RebuildAll()
}

// LoadTheme loads a theme from the given TOML file and rebuilds all
// elements from it.
func (m *Manager) LoadTheme(filename string) error {
	th, err := theme.Open(filename)
	if err != nil {
		return err
	}
	m.SetTheme(th)
	return nil
}

// WatchTheme loads the given theme file and watches it for changes,
// applying reloads on the next [Manager.Update]. Only one file can be
// watched at a time.
func (m *Manager) WatchTheme(filename string) error {
	if err := m.LoadTheme(filename); err != nil {
		return err
	}
	if m.watcher != nil {
		m.watcher.Close()
	}
	w, err := theme.Watch(filename, func(th *theme.Theme, err error) {
		if err != nil {
			slog.Error("ui.Manager: theme reload failed", "file", filename, "err", err)
			return
		}
		m.pending.Store(th)
	})
	if err != nil {
		return err
	}
	m.watcher = w
	return nil
}

// Close stops the theme watcher, if any.
func (m *Manager) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}

// RebuildAll rebuilds every live element, e.g. after a theme change.
func (m *Manager) RebuildAll() {
	for _, e := range m.snapshot(false) {
		if e.AsElement().Alive {
			e.Rebuild()
		}
	}
}

// Update applies any pending theme reload and then ticks every
// element with the elapsed time in seconds.
func (m *Manager) Update(dt float32) {
	if th := m.pending.Swap(nil); th != nil {
		m.SetTheme(th)
	}
	for _, e := range m.snapshot(false) {
		if e.AsElement().Alive {
			e.Update(dt)
		}
	}
}

// Process routes a pointer event to elements top-down by layer,
// returning true if one of them consumed it. Events without a
// position are not routed. The element that consumes a Press captures
// the pointer: Move and Release events go straight to it, regardless
// of position, until the Release.
func (m *Manager) Process(e *events.Event) bool {
	if !e.HasPos() {
		return false
	}
	if m.capture != nil && (e.Type() == events.Move || e.Type() == events.Release) {
		el := m.capture
		if e.Type() == events.Release {
			m.capture = nil
		}
		if !el.AsElement().Alive {
			m.capture = nil
			return false
		}
		return el.ProcessEvent(e)
	}
	for _, el := range m.snapshot(true) {
		eb := el.AsElement()
		// an element is hit only within the part of its rectangle the
		// container leaves visible
		if !eb.IsVisible() || !e.Pos.In(eb.Rect.Intersect(eb.containerRect())) {
			continue
		}
		if el.ProcessEvent(e) {
			if e.Type() == events.Press {
				m.capture = el
			}
			return true
		}
	}
	return false
}

// NeedsRedraw reports whether anything changed since the last Draw.
func (m *Manager) NeedsRedraw() bool { return m.needsRender }

// Draw composites all visible elements onto dst in ascending layer
// order using over blending; element surfaces are premultiplied-alpha,
// as required for correct blending at translucent edges.
func (m *Manager) Draw(dst *image.RGBA) {
	for _, el := range m.snapshot(false) {
		eb := el.AsElement()
		disp := eb.Displayed()
		if !eb.IsVisible() || disp == nil {
			continue
		}
		org := eb.drawOrigin()
		r := image.Rectangle{Min: org, Max: org.Add(disp.Bounds().Size())}
		draw.Draw(dst, r, disp, image.Point{}, draw.Over)
		eb.needsRender = false
	}
	m.needsRender = false
}

func (m *Manager) register(e Element) {
	m.elements = append(m.elements, e)
	m.invalidate()
}

func (m *Manager) unregister(e Element) {
	for i, el := range m.elements {
		if el == e {
			m.elements = append(m.elements[:i], m.elements[i+1:]...)
			return
		}
	}
}

func (m *Manager) invalidate() { m.needsRender = true }

// snapshot returns the elements sorted by layer, ascending for
// drawing or descending for event routing. Insertion order is kept
// within a layer.
func (m *Manager) snapshot(descending bool) []Element {
	out := make([]Element, len(m.elements))
	copy(out, m.elements)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].AsElement().Layer, out[j].AsElement().Layer
		if descending {
			return li > lj
		}
		return li < lj
	})
	return out
}
