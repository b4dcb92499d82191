// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"

	"github.com/slateui/slate/events"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Button is a push button with a single-line text label. It consumes
// Press and DoubleClick pointer events inside its rectangle and
// notifies its listeners with the label as the event data. List
// elements use its selected state to show membership in a selection.
type Button struct {
	ElementBase

	text     string
	selected bool

	normalBG    color.RGBA
	selectedBG  color.RGBA
	borderColor color.RGBA
	textColor   color.RGBA
	borderWidth int
}

// NewButton creates a button with the given relative rectangle and
// label text.
func NewButton(mgr *Manager, relRect image.Rectangle, text string, opts ...Option) *Button {
	b := &Button{text: text}
	b.ElementBase.init(b, mgr, relRect, "button", newConfig(opts))
	b.Rebuild()
	return b
}

// Text returns the button's label.
func (b *Button) Text() string { return b.text }

// SetText changes the button's label.
func (b *Button) SetText(text string) {
	if b.text == text {
		return
	}
	b.text = text
	b.redraw()
}

// Select puts the button in its selected state.
func (b *Button) Select() {
	if b.selected {
		return
	}
	b.selected = true
	b.redraw()
}

// Unselect returns the button to its normal state.
func (b *Button) Unselect() {
	if !b.selected {
		return
	}
	b.selected = false
	b.redraw()
}

// IsSelected reports whether the button is in its selected state.
func (b *Button) IsSelected() bool { return b.selected }

// Rebuild re-reads theming data and redraws the button surface.
func (b *Button) Rebuild() {
	ids := b.ThemeIDs()
	th := b.Manager.Theme()
	b.normalBG = th.Color(ids, "normal_bg")
	b.selectedBG = th.Color(ids, "selected_bg")
	b.borderColor = th.Color(ids, "normal_border")
	b.textColor = th.Color(ids, "normal_text")
	b.borderWidth = th.MiscInt(ids, "border_width", 1)
	b.redraw()
}

// ProcessEvent consumes Press and DoubleClick pointer events inside
// the button's rectangle, re-sending them to the button's listeners
// with the label as data.
func (b *Button) ProcessEvent(e *events.Event) bool {
	if !e.HasPos() || !e.Pos.In(b.Rect) {
		return false
	}
	switch e.Type() {
	case events.Press:
		e.SetHandled()
		b.Send(events.Press, b.text)
		return true
	case events.DoubleClick:
		e.SetHandled()
		b.Send(events.DoubleClick, b.text)
		return true
	}
	return false
}

func (b *Button) redraw() {
	sz := b.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		b.setDisplayed(nil)
		return
	}
	surf := image.NewRGBA(image.Rectangle{Max: sz})
	bg := b.normalBG
	if b.selected {
		bg = b.selectedBG
	}
	fillRect(surf, surf.Bounds(), bg)
	frameRect(surf, surf.Bounds(), b.borderWidth, b.borderColor)

	if b.text != "" {
		face := basicfont.Face7x13
		d := &font.Drawer{
			Dst:  surf,
			Src:  image.NewUniform(b.textColor),
			Face: face,
		}
		w := d.MeasureString(b.text).Ceil()
		x := (sz.X - w) / 2
		if x < b.borderWidth+2 {
			x = b.borderWidth + 2
		}
		y := (sz.Y + face.Ascent - face.Descent) / 2
		d.Dot = fixed.P(x, y)
		d.DrawString(b.text)
	}
	b.setDisplayed(surf)
}
