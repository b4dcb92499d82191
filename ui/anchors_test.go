// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorsResolve(t *testing.T) {
	container := image.Rect(100, 50, 500, 350)

	tests := []struct {
		name    string
		anchors Anchors
		rel     image.Rectangle
		want    image.Rectangle
	}{
		{"top left default", Anchors{},
			image.Rect(10, 20, 60, 70),
			image.Rect(110, 70, 160, 120)},
		{"bottom right", Anchors{Left: End, Right: End, Top: End, Bottom: End},
			image.Rect(-60, -70, -10, -20),
			image.Rect(440, 280, 490, 330)},
		{"stretch", Stretch(),
			image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(-5, -5)},
			image.Rect(105, 55, 495, 345)},
		{"centered", Anchors{Left: Center, Right: Center, Top: Center, Bottom: Center},
			image.Rect(-25, -25, 25, 25),
			image.Rect(275, 175, 325, 225)},
		{"stretch width only", Anchors{Left: Start, Right: End, Top: Start, Bottom: Start},
			image.Rectangle{Min: image.Pt(0, 10), Max: image.Pt(-20, 40)},
			image.Rect(100, 60, 480, 90)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.anchors.Resolve(tt.rel, container))
		})
	}
}

func TestAnchorString(t *testing.T) {
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "end", End.String())
	assert.Equal(t, "center", Center.String())
}
