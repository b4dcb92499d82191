// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fillRect fills the given rectangle of dst with a solid color.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// frameRect strokes a border of the given width just inside the
// rectangle.
func frameRect(dst *image.RGBA, r image.Rectangle, width int, c color.RGBA) {
	if width <= 0 {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// shadowColor is the premultiplied translucent black used for panel
// drop shadows.
var shadowColor = color.RGBA{A: 96}

// panelSurface builds the standard box surface for panel-like
// elements: an outer drop shadow, a border, and a background fill.
func panelSurface(size image.Point, bg, border color.RGBA, borderWidth, shadowWidth int) *image.RGBA {
	surf := image.NewRGBA(image.Rectangle{Max: size})
	full := surf.Bounds()
	frameRect(surf, full, shadowWidth, shadowColor)
	inner := full.Inset(shadowWidth)
	fillRect(surf, inner, border)
	fillRect(surf, inner.Inset(borderWidth), bg)
	return surf
}
