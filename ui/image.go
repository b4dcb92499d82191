// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"
	"image"

	"github.com/slateui/slate/bitmap"
)

// Image displays a bitmap as a UI element, intended for an image but
// it can serve other purposes. The source is converted to the
// toolkit's premultiplied-alpha surface format and kept scaled to the
// element's rectangle across resizes. When scaling is needed, the
// unscaled source is retained and every resample starts from it, so
// repeated resizes do not compound quality loss.
type Image struct {
	ElementBase

	// original is the highest-quality source surface last supplied,
	// retained for rescaling. It stays nil until a size mismatch
	// first forces its capture.
	original *image.RGBA
}

// NewImage creates an image element with the given relative rectangle,
// displaying the given source image. Pass [Premultiplied] if the
// source's alpha is already premultiplied; otherwise its color
// channels are premultiplied during conversion.
func NewImage(mgr *Manager, relRect image.Rectangle, src image.Image, opts ...Option) (*Image, error) {
	im := &Image{}
	cfg := newConfig(opts)
	im.ElementBase.init(im, mgr, relRect, "image", cfg)
	if err := im.SetImage(src, cfg.premultiplied); err != nil {
		im.ElementBase.Kill()
		return nil, err
	}
	return im, nil
}

// SetImage changes the image displayed on the element at run time,
// without recreating the element. The source is converted to
// premultiplied-alpha RGBA; if its dimensions do not match the
// element's rectangle it is retained as the original and a smoothly
// scaled copy is displayed. Nothing is changed on error.
//
// A same-size replacement does not refresh a previously retained
// original: a later resize still rescales from that older original.
func (im *Image) SetImage(src image.Image, premultiplied bool) error {
	surf, err := bitmap.AsPremultiplied(src, premultiplied)
	if err != nil {
		return fmt.Errorf("ui.Image.SetImage: %w", err)
	}
	sz := im.Rect.Size()
	if surf.Bounds().Size() != sz {
		im.original = surf
		im.setDisplayed(bitmap.Scale(im.original, sz))
	} else {
		im.setDisplayed(surf)
	}
	return nil
}

// SetDimensions sets the dimensions of the element, scaling the
// displayed surface to match. The rescale always starts from the
// retained original, capturing one from the current surface first if
// none has been retained yet.
func (im *Image) SetDimensions(size image.Point) error {
	if err := im.ElementBase.SetDimensions(size); err != nil {
		return fmt.Errorf("ui.Image.SetDimensions: %w", err)
	}
	im.scaleToRect()
	return nil
}

// Rebuild rescales the displayed surface if the rectangle changed,
// e.g. after an anchor-driven stretch.
func (im *Image) Rebuild() {
	im.scaleToRect()
}

// scaleToRect makes the displayed surface match the rectangle size,
// resampling from the original. A matching size is a no-op.
func (im *Image) scaleToRect() {
	sz := im.Rect.Size()
	cur := im.PreClipped()
	if cur == nil {
		cur = im.Displayed()
	}
	if cur != nil && cur.Bounds().Size() == sz {
		return
	}
	if im.original == nil {
		// lazy capture: the first mismatching resize records the
		// current surface as the original, preferring the uncropped
		// pre-clip surface when the container cropped us
		im.original = cur
	}
	if im.original == nil {
		return
	}
	im.setDisplayed(bitmap.Scale(im.original, sz))
}

// Original returns the retained unscaled source surface, or nil if
// none has been captured yet.
func (im *Image) Original() *image.RGBA { return im.original }
