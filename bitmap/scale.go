// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitmap

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Scale returns a smooth (bilinear) resample of the source image at
// exactly the given size. This is the quality-preserving scale used to
// keep element surfaces matched to their rectangles; callers should
// always resample from their highest-quality source rather than from a
// previously scaled result, so repeated resizes do not compound loss.
func Scale(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Resize returns a new image resized to the given size using a sensible
// default level of smoothing (linear interpolation).
func Resize(img image.Image, szX, szY int) image.Image {
	return transform.Resize(img, szX, szY, transform.Linear)
}

// SizeMax computes the size where the largest dimension (X or Y) is set
// to maxSz, preserving the aspect ratio.
func SizeMax(sz image.Point, maxSz int) image.Point {
	tsz := sz
	if sz.X > sz.Y {
		tsz.X = maxSz
		tsz.Y = int(float32(sz.Y) * (float32(tsz.X) / float32(sz.X)))
	} else {
		tsz.Y = maxSz
		tsz.X = int(float32(sz.X) * (float32(tsz.Y) / float32(sz.Y)))
	}
	return tsz
}

// ResizeMax resizes the image so that the largest dimension is set to
// maxSz, preserving the aspect ratio. Returns the original image if it
// is already within the limit.
func ResizeMax(img image.Image, maxSz int) image.Image {
	sz := img.Bounds().Size()
	tsz := SizeMax(sz, maxSz)
	if tsz != sz {
		img = transform.Resize(img, tsz.X, tsz.Y, transform.Linear)
	}
	return img
}
