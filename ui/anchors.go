// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"

	"github.com/chewxy/math32"
)

// Anchor specifies which edge of the container a rectangle edge is
// measured from.
type Anchor int32

const (
	// Start anchors an edge to the container's minimum (left or top)
	// edge; offsets are typically positive.
	Start Anchor = iota

	// End anchors an edge to the container's maximum (right or
	// bottom) edge; offsets are typically negative.
	End

	// Center anchors an edge to the container's center line.
	Center
)

func (a Anchor) String() string {
	switch a {
	case End:
		return "end"
	case Center:
		return "center"
	}
	return "start"
}

// Anchors describes what each edge of an element's relative rectangle
// is measured from within its container. The zero value anchors
// everything to the top-left, giving a fixed-size element offset from
// the container origin. Anchoring Right or Bottom to [End] makes the
// element stretch with its container.
type Anchors struct {
	Left, Right, Top, Bottom Anchor
}

// Stretch returns anchors that pin all four edges to their matching
// container edges, so the element resizes with the container.
func Stretch() Anchors {
	return Anchors{Left: Start, Right: End, Top: Start, Bottom: End}
}

// Resolve computes the absolute rectangle for the given relative
// rectangle within the given container rectangle.
func (a Anchors) Resolve(rel, container image.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{
			X: resolveEdge(a.Left, rel.Min.X, container.Min.X, container.Max.X),
			Y: resolveEdge(a.Top, rel.Min.Y, container.Min.Y, container.Max.Y),
		},
		Max: image.Point{
			X: resolveEdge(a.Right, rel.Max.X, container.Min.X, container.Max.X),
			Y: resolveEdge(a.Bottom, rel.Max.Y, container.Min.Y, container.Max.Y),
		},
	}
}

func resolveEdge(a Anchor, off, min, max int) int {
	switch a {
	case End:
		return max + off
	case Center:
		return int(math32.Round(float32(min+max)/2)) + off
	}
	return min + off
}
