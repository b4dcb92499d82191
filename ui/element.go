// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui provides the retained-mode element machinery and the
// built-in elements: [Image], [Button], [ScrollBar], [SelectionList],
// and [DropDown], managed and composited by a [Manager].
package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/slateui/slate/events"
	"golang.org/x/image/draw"
)

// Element is the interface that all slate elements satisfy. The core
// element functionality is defined on [ElementBase], and all
// higher-level element types must embed it. Call [Element.AsElement]
// to access the core element functionality.
type Element interface {
	// AsElement returns the [ElementBase] of this Element.
	AsElement() *ElementBase

	// Update is called every update cycle with the time passed in
	// seconds since the previous call.
	Update(dt float32)

	// ProcessEvent gives the element a chance to consume an event,
	// returning true if it did.
	ProcessEvent(e *events.Event) bool

	// Rebuild reconstructs the element's displayed surface from its
	// current state and theming data.
	Rebuild()

	// Kill removes the element (and anything it owns) from its
	// container and manager.
	Kill()
}

// ElementBase implements the [Element] interface and provides the core
// functionality of an element: its rectangles, stacking layer, theming
// identity, visibility, displayed surface, and redraw invalidation.
// Higher-level element types must embed it.
type ElementBase struct {
	// Manager is the manager that owns this element.
	Manager *Manager

	// Container is the container this element is within; nil only
	// for the root container.
	Container *Container

	// RelativeRect positions and sizes the element relative to its
	// container, as interpreted by Anchors.
	RelativeRect image.Rectangle

	// Rect is the resolved absolute rectangle.
	Rect image.Rectangle

	// Anchors dictate what RelativeRect is relative to.
	Anchors Anchors

	// ElementIDs is the hierarchy chain of element type IDs used for
	// theming (e.g. ["selection_list", "button"]).
	ElementIDs []string

	// ObjectIDs is the hierarchy chain of custom object IDs, aligned
	// with ElementIDs; entries may be empty.
	ObjectIDs []string

	// StartingHeight is how many layers up from the container the
	// element is placed.
	StartingHeight int

	// LayerThickness is how many compositing layers the element
	// occupies.
	LayerThickness int

	// Layer is the resolved compositing layer.
	Layer int

	// Visible is whether the element is drawn and receives pointer
	// events. Container visibility may override it.
	Visible bool

	// Alive is false once the element has been killed.
	Alive bool

	// Listeners holds the event listener functions for this element,
	// added via [ElementBase.On].
	Listeners events.Listeners

	this        Element
	displayed   *image.RGBA
	preClipped  *image.RGBA
	drawOffset  image.Point
	needsRender bool
}

// init establishes the element within its manager and container.
// Every concrete element type calls it first in its constructor.
func (eb *ElementBase) init(this Element, mgr *Manager, relRect image.Rectangle, elementID string, cfg *config) {
	eb.this = this
	eb.Manager = mgr
	eb.Container = cfg.container
	if eb.Container == nil && mgr != nil {
		eb.Container = mgr.root
	}
	eb.RelativeRect = relRect
	eb.Anchors = cfg.anchors
	eb.StartingHeight = cfg.startingHeight
	eb.LayerThickness = 1
	eb.Visible = cfg.visible
	eb.Alive = true
	eb.ElementIDs, eb.ObjectIDs = buildIDs(cfg.parent, cfg.objectID, elementID)
	if eb.Container != nil {
		eb.Layer = eb.Container.Layer + eb.StartingHeight
		eb.Container.addChild(this)
	}
	eb.resolveRect()
	if mgr != nil {
		mgr.register(this)
	}
}

func buildIDs(parent Element, objectID, elementID string) (elementIDs, objectIDs []string) {
	if parent != nil {
		pb := parent.AsElement()
		elementIDs = append(elementIDs, pb.ElementIDs...)
		objectIDs = append(objectIDs, pb.ObjectIDs...)
	}
	elementIDs = append(elementIDs, elementID)
	objectIDs = append(objectIDs, objectID)
	return
}

// AsElement returns the base element.
func (eb *ElementBase) AsElement() *ElementBase { return eb }

// Update does nothing by default.
func (eb *ElementBase) Update(dt float32) {}

// ProcessEvent consumes nothing by default.
func (eb *ElementBase) ProcessEvent(e *events.Event) bool { return false }

// Rebuild does nothing by default.
func (eb *ElementBase) Rebuild() {}

// Kill removes the element from its container and manager.
func (eb *ElementBase) Kill() {
	if !eb.Alive {
		return
	}
	eb.Alive = false
	if eb.Container != nil {
		eb.Container.removeChild(eb.this)
	}
	if eb.Manager != nil {
		eb.Manager.unregister(eb.this)
		eb.Manager.invalidate()
	}
}

// ElementID returns the element's own element type ID.
func (eb *ElementBase) ElementID() string {
	if n := len(eb.ElementIDs); n > 0 {
		return eb.ElementIDs[n-1]
	}
	return ""
}

// ObjectID returns the element's own custom object ID, which may be
// empty.
func (eb *ElementBase) ObjectID() string {
	if n := len(eb.ObjectIDs); n > 0 {
		return eb.ObjectIDs[n-1]
	}
	return ""
}

// ThemeIDs returns the theming lookup chain for this element, most
// specific ID first.
func (eb *ElementBase) ThemeIDs() []string {
	var ids []string
	if oid := eb.ObjectID(); oid != "" {
		ids = append(ids, oid)
	}
	if n := len(eb.ElementIDs); n > 1 {
		ids = append(ids, strings.Join(eb.ElementIDs, "."))
	}
	if eid := eb.ElementID(); eid != "" {
		ids = append(ids, eid)
	}
	return ids
}

// On adds an event listener function for the given event type.
func (eb *ElementBase) On(typ events.Type, fun func(e *events.Event)) {
	eb.Listeners.Add(typ, fun)
}

// Send calls this element's listeners with a new event of the given
// type carrying the given data, sourced from this element.
func (eb *ElementBase) Send(typ events.Type, data string) {
	source := eb.ObjectID()
	if source == "" {
		source = eb.ElementID()
	}
	eb.Listeners.Call(events.New(typ, source, data))
}

// IsVisible reports whether the element is drawn: it and all of its
// containers must be visible and alive.
func (eb *ElementBase) IsVisible() bool {
	if !eb.Alive || !eb.Visible {
		return false
	}
	if eb.Container != nil {
		return eb.Container.IsVisible()
	}
	return true
}

// SetVisible shows or hides the element.
func (eb *ElementBase) SetVisible(v bool) {
	if eb.Visible == v {
		return
	}
	eb.Visible = v
	eb.NeedsRender()
}

// SetRelativePosition directly sets the position of the element's
// relative rectangle, preserving its size.
func (eb *ElementBase) SetRelativePosition(pos image.Point) {
	sz := eb.RelativeRect.Size()
	eb.RelativeRect = image.Rectangle{Min: pos, Max: pos.Add(sz)}
	eb.resolveRect()
	eb.NeedsRender()
}

// SetPosition sets the absolute screen position of the element,
// translating the relative rectangle to match.
func (eb *ElementBase) SetPosition(pos image.Point) {
	delta := pos.Sub(eb.Rect.Min)
	eb.RelativeRect = eb.RelativeRect.Add(delta)
	eb.resolveRect()
	eb.NeedsRender()
}

// SetDimensions sets the size of the element's relative rectangle.
// The dimensions must have positive area.
func (eb *ElementBase) SetDimensions(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	eb.RelativeRect.Max = eb.RelativeRect.Min.Add(size)
	eb.resolveRect()
	eb.NeedsRender()
	return nil
}

// resolveRect recomputes the absolute rectangle from the relative
// rectangle, anchors, and container.
func (eb *ElementBase) resolveRect() {
	eb.Rect = eb.Anchors.Resolve(eb.RelativeRect, eb.containerRect())
}

func (eb *ElementBase) containerRect() image.Rectangle {
	if eb.Container != nil {
		return eb.Container.Rect
	}
	if eb.Manager != nil {
		return eb.Manager.windowRect
	}
	return image.Rectangle{}
}

// Displayed returns the surface composited for this element each
// frame, or nil if it has none.
func (eb *ElementBase) Displayed() *image.RGBA { return eb.displayed }

// PreClipped returns the full, unclipped surface recorded when the
// displayed surface was cropped to the container, or nil if no
// clipping applied. It is the preferred rescale source for elements
// that resample their content.
func (eb *ElementBase) PreClipped() *image.RGBA { return eb.preClipped }

// setDisplayed installs the surface composited for this element,
// cropping it to the container bounds when the element overflows them
// and recording the uncropped surface in the pre-clip slot.
func (eb *ElementBase) setDisplayed(img *image.RGBA) {
	defer eb.NeedsRender()
	eb.drawOffset = image.Point{}
	if img == nil {
		eb.displayed = nil
		eb.preClipped = nil
		return
	}
	clip := eb.containerRect()
	if clip.Empty() || eb.Rect.In(clip) {
		eb.displayed = img
		eb.preClipped = nil
		return
	}
	vis := eb.Rect.Intersect(clip)
	if vis.Empty() {
		eb.preClipped = img
		eb.displayed = nil
		return
	}
	eb.preClipped = img
	eb.drawOffset = vis.Min.Sub(eb.Rect.Min)
	sub := image.NewRGBA(image.Rectangle{Max: vis.Size()})
	draw.Draw(sub, sub.Bounds(), img, eb.drawOffset, draw.Src)
	eb.displayed = sub
}

// drawOrigin returns the absolute position the displayed surface is
// composited at, accounting for container cropping.
func (eb *ElementBase) drawOrigin() image.Point {
	return eb.Rect.Min.Add(eb.drawOffset)
}

// NeedsRender marks the element (and its manager) as needing to be
// composited again.
func (eb *ElementBase) NeedsRender() {
	eb.needsRender = true
	if eb.Manager != nil {
		eb.Manager.invalidate()
	}
}
