// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitmap provides the premultiplied-alpha RGBA surfaces that slate
// elements display, along with conversion, resampling, file IO, and
// image-based testing utilities.
package bitmap

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

var (
	// ErrNilImage is returned when a nil source image is supplied.
	ErrNilImage = errors.New("bitmap: nil source image")

	// ErrEmptyImage is returned when a source image has a zero-area bounds.
	ErrEmptyImage = errors.New("bitmap: source image has zero area")
)

// AsPremultiplied returns a premultiplied-alpha RGBA copy of the given
// source image, which is the canonical surface format composited by the
// toolkit. If premultiplied is true, the source channel bytes are taken
// as already premultiplied and are copied through unchanged; otherwise
// they are treated as straight alpha and each color channel is scaled
// by its alpha fraction. The source is never modified.
func AsPremultiplied(src image.Image, premultiplied bool) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	sz := src.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, ErrEmptyImage
	}
	if premultiplied {
		return rawRGBA(src), nil
	}
	switch s := src.(type) {
	case *image.RGBA:
		// caller says the bytes are straight alpha despite the type
		out := rawRGBA(s)
		Premultiply(out)
		return out, nil
	default:
		// the standard conversion from any color model to RGBA
		// produces premultiplied values
		out := image.NewRGBA(image.Rectangle{Max: sz})
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return out, nil
	}
}

// Premultiply converts the given image from straight alpha to
// premultiplied alpha in place, scaling each color channel by A/255
// with rounding.
func Premultiply(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(img.Pix[i+3])
			if a != 255 {
				img.Pix[i+0] = uint8((uint32(img.Pix[i+0])*a + 127) / 255)
				img.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
				img.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
			}
			i += 4
		}
	}
}

// AsRGBA returns the given image as an *image.RGBA, without copying
// if it already is one.
func AsRGBA(img image.Image) *image.RGBA {
	if rg, ok := img.(*image.RGBA); ok {
		return rg
	}
	return rawRGBA(img)
}

// Clone returns a pixel copy of the given image with bounds starting at
// the origin.
func Clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	return rawRGBA(img)
}

// rawRGBA copies the source into a new origin-based RGBA image. For RGBA
// and NRGBA sources the channel bytes are copied through without any
// color model conversion; other types go through the standard conversion.
func rawRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rectangle{Max: b.Size()})
	n := 4 * b.Dx()
	switch s := src.(type) {
	case *image.RGBA:
		for y := 0; y < b.Dy(); y++ {
			so := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+n], s.Pix[so:so+n])
		}
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			so := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+n], s.Pix[so:so+n])
		}
	default:
		draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	}
	return out
}
