// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

// config collects the construction parameters shared by all elements,
// plus a few that only particular element types consume.
type config struct {
	container      *Container
	parent         Element
	objectID       string
	anchors        Anchors
	visible        bool
	startingHeight int

	multiSelect     bool
	noDoubleClicks  bool
	premultiplied   bool
	expandDirection ExpandDirection
}

// Option configures the construction of an element.
type Option func(c *config)

func newConfig(opts []Option) *config {
	c := &config{visible: true, startingHeight: 1}
	for _, o := range opts {
		o(c)
	}
	return c
}

// In places the element inside the given container instead of the
// manager's root container.
func In(ct *Container) Option {
	return func(c *config) { c.container = ct }
}

// WithParent sets the element this element belongs to in the theming
// hierarchy.
func WithParent(p Element) Option {
	return func(c *config) { c.parent = p }
}

// WithObjectID sets a custom ID for fine tuning of theming.
func WithObjectID(id string) Option {
	return func(c *config) { c.objectID = id }
}

// WithAnchors sets what the element's relative rectangle is anchored to.
func WithAnchors(a Anchors) Option {
	return func(c *config) { c.anchors = a }
}

// WithStartingHeight sets how many layers up from its container the
// element is placed (default 1).
func WithStartingHeight(h int) Option {
	return func(c *config) { c.startingHeight = h }
}

// Hidden creates the element invisible; container visibility may
// override this.
func Hidden() Option {
	return func(c *config) { c.visible = false }
}

// WithMultiSelect allows picking multiple items from a selection list.
func WithMultiSelect() Option {
	return func(c *config) { c.multiSelect = true }
}

// WithoutDoubleClicks disables double-click events on a selection list.
func WithoutDoubleClicks() Option {
	return func(c *config) { c.noDoubleClicks = true }
}

// Premultiplied marks an image element's source bitmap as already
// being in premultiplied-alpha format.
func Premultiplied() Option {
	return func(c *config) { c.premultiplied = true }
}

// WithExpandDirection forces the direction a drop down menu expands in.
func WithExpandDirection(d ExpandDirection) Option {
	return func(c *config) { c.expandDirection = d }
}
