// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
)

// Container is an invisible element that holds other elements,
// positioning them through their anchors and cropping their surfaces
// to its bounds. Moving or resizing a container re-resolves all of its
// children.
type Container struct {
	ElementBase

	children []Element
}

// NewContainer creates a container with the given relative rectangle.
func NewContainer(mgr *Manager, relRect image.Rectangle, opts ...Option) *Container {
	ct := &Container{}
	ct.ElementBase.init(ct, mgr, relRect, "container", newConfig(opts))
	return ct
}

// newRootContainer creates the manager's window-sized root container.
func newRootContainer(mgr *Manager) *Container {
	ct := &Container{}
	cfg := newConfig(nil)
	cfg.startingHeight = 0
	ct.ElementBase.init(ct, mgr, mgr.windowRect, "root_container", cfg)
	return ct
}

// Elements returns the container's current children.
func (ct *Container) Elements() []Element {
	out := make([]Element, len(ct.children))
	copy(out, ct.children)
	return out
}

func (ct *Container) addChild(e Element) {
	ct.children = append(ct.children, e)
}

func (ct *Container) removeChild(e Element) {
	for i, c := range ct.children {
		if c == e {
			ct.children = append(ct.children[:i], ct.children[i+1:]...)
			return
		}
	}
}

// Clear kills all of the container's children.
func (ct *Container) Clear() {
	for _, c := range ct.Elements() {
		c.Kill()
	}
}

// Kill kills the container and everything inside it.
func (ct *Container) Kill() {
	ct.Clear()
	ct.ElementBase.Kill()
}

// SetRelativePosition moves the container and re-resolves its children.
func (ct *Container) SetRelativePosition(pos image.Point) {
	ct.ElementBase.SetRelativePosition(pos)
	ct.relayoutChildren()
}

// SetPosition moves the container to an absolute position and
// re-resolves its children.
func (ct *Container) SetPosition(pos image.Point) {
	ct.ElementBase.SetPosition(pos)
	ct.relayoutChildren()
}

// SetDimensions resizes the container and re-resolves its children;
// children whose resolved size changed through their anchors are
// rebuilt.
func (ct *Container) SetDimensions(size image.Point) error {
	if err := ct.ElementBase.SetDimensions(size); err != nil {
		return err
	}
	ct.relayoutChildren()
	return nil
}

// relayoutChildren re-resolves the absolute rectangles of all children
// after a container geometry change, recursing into child containers
// and rebuilding any child whose resolved size changed.
func (ct *Container) relayoutChildren() {
	for _, c := range ct.Elements() {
		cb := c.AsElement()
		old := cb.Rect.Size()
		cb.resolveRect()
		cb.needsRender = true
		if cc, ok := c.(*Container); ok {
			cc.relayoutChildren()
		}
		if cb.Rect.Size() != old {
			c.Rebuild()
		}
	}
	if ct.Manager != nil {
		ct.Manager.invalidate()
	}
}
