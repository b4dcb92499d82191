// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/slateui/slate/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestImageMatchingSize(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{255, 0, 0, 255})
	im, err := NewImage(m, image.Rect(0, 0, 100, 100), src)
	require.NoError(t, err)

	// no scaling needed, so no original is retained
	assert.Nil(t, im.Original())
	require.NotNil(t, im.Displayed())
	assert.Equal(t, image.Pt(100, 100), im.Displayed().Bounds().Size())
}

func TestImageScaledAtConstruction(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{0, 255, 0, 255})
	im, err := NewImage(m, image.Rect(0, 0, 50, 50), src)
	require.NoError(t, err)

	require.NotNil(t, im.Original())
	assert.Equal(t, image.Pt(100, 100), im.Original().Bounds().Size())
	assert.Equal(t, image.Pt(50, 50), im.Displayed().Bounds().Size())
}

func TestImageResizeIsIdempotent(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{0, 0, 255, 255})
	im, err := NewImage(m, image.Rect(0, 0, 50, 50), src)
	require.NoError(t, err)

	disp := im.Displayed()
	require.NoError(t, im.SetDimensions(image.Pt(50, 50)))
	assert.Same(t, disp, im.Displayed())
}

func TestImageResizeResamplesFromOriginal(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{10, 20, 30, 255})
	im, err := NewImage(m, image.Rect(0, 0, 50, 50), src)
	require.NoError(t, err)

	orig := im.Original()
	require.NoError(t, im.SetDimensions(image.Pt(200, 200)))
	assert.Same(t, orig, im.Original())
	assert.Equal(t, image.Pt(200, 200), im.Displayed().Bounds().Size())

	// scaling down and back up from the same opaque original loses
	// nothing
	require.NoError(t, im.SetDimensions(image.Pt(10, 10)))
	require.NoError(t, im.SetDimensions(image.Pt(100, 100)))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, im.Displayed().RGBAAt(50, 50))
}

func TestImageLazyOriginalCapture(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{200, 200, 200, 255})
	im, err := NewImage(m, image.Rect(0, 0, 100, 100), src)
	require.NoError(t, err)
	require.Nil(t, im.Original())

	disp := im.Displayed()
	require.NoError(t, im.SetDimensions(image.Pt(50, 50)))

	// the first mismatching resize captures the surface that was
	// displayed before it
	assert.Same(t, disp, im.Original())
	assert.Equal(t, image.Pt(50, 50), im.Displayed().Bounds().Size())
}

func TestImageLazyCapturePrefersPreClip(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	ct := NewContainer(m, image.Rect(0, 0, 30, 30))
	src := solidNRGBA(100, 100, color.NRGBA{50, 60, 70, 255})
	im, err := NewImage(m, image.Rect(0, 0, 100, 100), src, In(ct))
	require.NoError(t, err)
	require.Nil(t, im.Original())
	require.NotNil(t, im.PreClipped())

	require.NoError(t, im.SetDimensions(image.Pt(50, 50)))
	require.NotNil(t, im.Original())
	assert.Equal(t, image.Pt(100, 100), im.Original().Bounds().Size())
}

func TestImagePremultipliesStraightAlpha(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(4, 4, color.NRGBA{200, 100, 50, 128})
	im, err := NewImage(m, image.Rect(0, 0, 4, 4), src)
	require.NoError(t, err)

	got := im.Displayed().RGBAAt(1, 1)
	assert.Equal(t, uint8(128), got.A)
	assert.LessOrEqual(t, got.R, got.A)
	assert.InDelta(t, 100, int(got.R), 1)
	assert.InDelta(t, 50, int(got.G), 1)
	assert.InDelta(t, 25, int(got.B), 1)
}

func TestImagePremultipliedPassthrough(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidRGBA(4, 4, color.RGBA{100, 50, 25, 128})
	im, err := NewImage(m, image.Rect(0, 0, 4, 4), src, Premultiplied())
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{100, 50, 25, 128}, im.Displayed().RGBAAt(2, 2))
	// the element owns a copy
	assert.NotSame(t, src, im.Displayed())
}

func TestImageSetImageErrors(t *testing.T) {
	m := NewManager(image.Pt(400, 300))

	_, err := NewImage(m, image.Rect(0, 0, 50, 50), nil)
	require.ErrorIs(t, err, bitmap.ErrNilImage)

	_, err = NewImage(m, image.Rect(0, 0, 50, 50), image.NewNRGBA(image.Rectangle{}))
	require.ErrorIs(t, err, bitmap.ErrEmptyImage)

	// a failed SetImage leaves the element unchanged
	im, err := NewImage(m, image.Rect(0, 0, 50, 50),
		solidNRGBA(50, 50, color.NRGBA{1, 2, 3, 255}))
	require.NoError(t, err)
	disp := im.Displayed()
	require.Error(t, im.SetImage(nil, false))
	assert.Same(t, disp, im.Displayed())
}

func TestImageSameSizeReplaceKeepsOriginal(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	src := solidNRGBA(100, 100, color.NRGBA{5, 5, 5, 255})
	im, err := NewImage(m, image.Rect(0, 0, 50, 50), src)
	require.NoError(t, err)
	orig := im.Original()
	require.NotNil(t, orig)

	// a replacement that happens to match the rectangle is displayed
	// as-is; the retained original is not refreshed
	require.NoError(t, im.SetImage(solidNRGBA(50, 50, color.NRGBA{9, 9, 9, 255}), false))
	assert.Same(t, orig, im.Original())

	// so a later resize still resamples from the older original
	require.NoError(t, im.SetDimensions(image.Pt(100, 100)))
	assert.Equal(t, color.RGBA{5, 5, 5, 255}, im.Displayed().RGBAAt(50, 50))
}

func TestImageSetImageReplacesOriginalOnMismatch(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	im, err := NewImage(m, image.Rect(0, 0, 50, 50),
		solidNRGBA(100, 100, color.NRGBA{5, 5, 5, 255}))
	require.NoError(t, err)

	require.NoError(t, im.SetImage(solidNRGBA(80, 80, color.NRGBA{7, 7, 7, 255}), false))
	require.NotNil(t, im.Original())
	assert.Equal(t, image.Pt(80, 80), im.Original().Bounds().Size())
	assert.Equal(t, image.Pt(50, 50), im.Displayed().Bounds().Size())
	assert.Equal(t, color.RGBA{7, 7, 7, 255}, im.Displayed().RGBAAt(25, 25))
}

func TestImageSetDimensionsInvalid(t *testing.T) {
	m := NewManager(image.Pt(400, 300))
	im, err := NewImage(m, image.Rect(0, 0, 50, 50),
		solidNRGBA(50, 50, color.NRGBA{1, 2, 3, 255}))
	require.NoError(t, err)

	require.ErrorIs(t, im.SetDimensions(image.Pt(0, 10)), ErrInvalidSize)
	assert.Equal(t, image.Pt(50, 50), im.Displayed().Bounds().Size())
}
