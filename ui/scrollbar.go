// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/slateui/slate/events"
)

// wheelStep is the fraction of the scrollable range moved per unit of
// wheel delta.
const wheelStep = 0.1

// ScrollBar is a vertical scroll bar: a well with a proportional
// handle. Wheel events move the handle by [wheelStep] per unit of
// delta; pressing in the well above or below the handle pages by the
// visible fraction; pressing on the handle grabs it for dragging
// until the pointer is released.
type ScrollBar struct {
	ElementBase

	visiblePercentage float32
	startPercentage   float32
	moved             bool

	dragging bool
	dragGrab float32

	barColor  color.RGBA
	wellColor color.RGBA
}

// NewVerticalScrollBar creates a vertical scroll bar whose handle
// covers the given fraction (0-1) of the well.
func NewVerticalScrollBar(mgr *Manager, relRect image.Rectangle, visiblePercentage float32, opts ...Option) *ScrollBar {
	sb := &ScrollBar{}
	sb.ElementBase.init(sb, mgr, relRect, "vertical_scroll_bar", newConfig(opts))
	sb.visiblePercentage = clamp01(visiblePercentage)
	sb.Rebuild()
	return sb
}

// StartPercentage returns the scroll position as the fraction (0-1)
// of the content above the visible region.
func (sb *ScrollBar) StartPercentage() float32 { return sb.startPercentage }

// SetStartPercentage sets the scroll position, clamped so the handle
// stays within the well.
func (sb *ScrollBar) SetStartPercentage(p float32) {
	p = math32.Max(0, math32.Min(p, 1-sb.visiblePercentage))
	if p == sb.startPercentage {
		return
	}
	sb.startPercentage = p
	sb.moved = true
	sb.redraw()
}

// SetVisiblePercentage sets the fraction of the content that is
// visible, re-clamping the scroll position.
func (sb *ScrollBar) SetVisiblePercentage(p float32) {
	sb.visiblePercentage = clamp01(p)
	sb.startPercentage = math32.Min(sb.startPercentage, 1-sb.visiblePercentage)
	sb.redraw()
}

// ResetScrollPosition moves the handle back to the top.
func (sb *ScrollBar) ResetScrollPosition() {
	sb.startPercentage = 0
	sb.moved = true
	sb.redraw()
}

// HasMovedRecently reports whether the handle moved since the last
// call, consuming the flag.
func (sb *ScrollBar) HasMovedRecently() bool {
	m := sb.moved
	sb.moved = false
	return m
}

// Rebuild re-reads theming data and redraws the scroll bar surface.
func (sb *ScrollBar) Rebuild() {
	ids := sb.ThemeIDs()
	th := sb.Manager.Theme()
	sb.barColor = th.Color(ids, "scroll_bar")
	sb.wellColor = th.Color(ids, "scroll_well")
	sb.redraw()
}

// ProcessEvent consumes wheel events anywhere over the bar and Press
// events in the well, which page the view, or on the handle, which
// grabs it. While grabbed, captured Move events drag the handle and
// Release lets go; these may arrive with the pointer outside the bar.
func (sb *ScrollBar) ProcessEvent(e *events.Event) bool {
	if !e.HasPos() {
		return false
	}
	switch e.Type() {
	case events.Move:
		if !sb.dragging {
			return false
		}
		sb.SetStartPercentage(sb.pointerFrac(e.Pos) - sb.dragGrab)
		return true
	case events.Release:
		if !sb.dragging {
			return false
		}
		sb.dragging = false
		return true
	}
	if !e.Pos.In(sb.Rect) {
		return false
	}
	switch e.Type() {
	case events.Scroll:
		e.SetHandled()
		sb.SetStartPercentage(sb.startPercentage + e.ScrollDelta*wheelStep)
		return true
	case events.Press:
		e.SetHandled()
		frac := sb.pointerFrac(e.Pos)
		switch {
		case frac < sb.startPercentage:
			sb.SetStartPercentage(sb.startPercentage - sb.visiblePercentage)
		case frac > sb.startPercentage+sb.visiblePercentage:
			sb.SetStartPercentage(sb.startPercentage + sb.visiblePercentage)
		default:
			sb.dragging = true
			sb.dragGrab = frac - sb.startPercentage
		}
		return true
	}
	return false
}

// pointerFrac converts a pointer position to a fraction of the well
// height, unclamped.
func (sb *ScrollBar) pointerFrac(pos image.Point) float32 {
	h := sb.Rect.Dy()
	if h <= 0 {
		return 0
	}
	return float32(pos.Y-sb.Rect.Min.Y) / float32(h)
}

func (sb *ScrollBar) redraw() {
	sz := sb.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		sb.setDisplayed(nil)
		return
	}
	surf := image.NewRGBA(image.Rectangle{Max: sz})
	fillRect(surf, surf.Bounds(), sb.wellColor)
	y0 := int(sb.startPercentage * float32(sz.Y))
	y1 := int((sb.startPercentage + sb.visiblePercentage) * float32(sz.Y))
	if y1 > sz.Y {
		y1 = sz.Y
	}
	fillRect(surf, image.Rect(1, y0, sz.X-1, y1), sb.barColor)
	sb.setDisplayed(surf)
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
