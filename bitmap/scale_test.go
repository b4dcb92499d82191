// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkerboard returns an image alternating between two colors per pixel.
func checkerboard(sz image.Point, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: sz})
	for y := 0; y < sz.Y; y++ {
		for x := 0; x < sz.X; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

func TestScaleExactSize(t *testing.T) {
	src := checkerboard(image.Pt(100, 100), color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255})
	for _, sz := range []image.Point{{50, 50}, {200, 200}, {33, 77}, {1, 1}} {
		out := Scale(src, sz)
		assert.Equal(t, sz, out.Bounds().Size())
	}
}

func TestScaleOpaquePreserved(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 40, 80, 120, 255
	}
	out := Scale(src, image.Pt(7, 13))
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			got := out.RGBAAt(x, y)
			assert.True(t, CompareColors(got, color.RGBA{R: 40, G: 80, B: 120, A: 255}, 1),
				"pixel at (%d, %d): %v", x, y, got)
		}
	}
}

func TestScaleDegenerate(t *testing.T) {
	src := checkerboard(image.Pt(4, 4), color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})
	out := Scale(src, image.Point{})
	assert.True(t, out.Bounds().Empty())
	out = Scale(nil, image.Pt(4, 4))
	assert.Equal(t, image.Pt(4, 4), out.Bounds().Size())
}

func TestResize(t *testing.T) {
	src := checkerboard(image.Pt(8, 8), color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255})
	out := Resize(src, 16, 4)
	assert.Equal(t, image.Pt(16, 4), out.Bounds().Size())
}

func TestSizeMax(t *testing.T) {
	assert.Equal(t, image.Pt(50, 25), SizeMax(image.Pt(100, 50), 50))
	assert.Equal(t, image.Pt(25, 50), SizeMax(image.Pt(50, 100), 50))
}

func TestResizeMax(t *testing.T) {
	src := checkerboard(image.Pt(100, 50), color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255})
	out := ResizeMax(src, 50)
	assert.Equal(t, image.Pt(50, 25), out.Bounds().Size())

	// already at the target size: returned unchanged
	small := checkerboard(image.Pt(10, 10), color.RGBA{A: 255}, color.RGBA{A: 255})
	assert.Equal(t, image.Image(small), ResizeMax(small, 10))
}
