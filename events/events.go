// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the typed event values that slate elements
// send and receive, and the listener registries used to subscribe
// to them.
package events

import (
	"fmt"
	"image"
)

// Type determines the type of UI event, and also the level at which
// one can select which events to listen to.
type Type int32

const (
	// Unknown is the zero value, an unknown event type.
	Unknown Type = iota

	// Press happens when a pointer button is pressed and released
	// inside an element. This is the typical event for basic
	// interaction with buttons and list items.
	Press

	// DoubleClick represents two Press events in rapid succession
	// on the same element.
	DoubleClick

	// Change is sent by elements whose principal value changed,
	// such as a drop down menu with a newly picked option.
	Change

	// Select is sent when a list item becomes selected.
	Select

	// Deselect is sent when a previously selected list item is
	// dropped from the selection.
	Deselect

	// Scroll is a pointer wheel movement over an element.
	Scroll

	// Move is a pointer movement with the button held down, routed to
	// the element that consumed the preceding Press for dragging.
	Move

	// Release is a pointer button release, ending a press-move
	// sequence.
	Release
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case DoubleClick:
		return "double-click"
	case Change:
		return "change"
	case Select:
		return "select"
	case Deselect:
		return "deselect"
	case Scroll:
		return "scroll"
	case Move:
		return "move"
	case Release:
		return "release"
	}
	return "unknown"
}

// Event is a single UI event. Pointer events carry a position;
// element-generated events carry the source element's object ID and
// a string payload (e.g., the text of the affected list item).
type Event struct {
	// Typ is the type of the event.
	Typ Type

	// Source is the object ID of the element that generated the
	// event, for element-generated events.
	Source string

	// Data is the string payload of the event, such as the text of
	// a selected item or the newly chosen option.
	Data string

	// Pos is the pointer position, valid only if PosAvail is set.
	Pos image.Point

	// PosAvail reports whether Pos is meaningful for this event.
	PosAvail bool

	// ScrollDelta is the wheel movement for Scroll events; positive
	// values scroll the content down.
	ScrollDelta float32

	handled bool
}

// New returns an element-generated event with the given source object
// ID and data payload.
func New(typ Type, source, data string) *Event {
	return &Event{Typ: typ, Source: source, Data: data}
}

// NewPointer returns a pointer event at the given position.
func NewPointer(typ Type, pos image.Point) *Event {
	return &Event{Typ: typ, Pos: pos, PosAvail: true}
}

// NewScroll returns a wheel event at the given position with the given
// delta.
func NewScroll(pos image.Point, delta float32) *Event {
	return &Event{Typ: Scroll, Pos: pos, PosAvail: true, ScrollDelta: delta}
}

// Type returns the type of the event.
func (e *Event) Type() Type { return e.Typ }

// HasPos reports whether the event carries a pointer position.
func (e *Event) HasPos() bool { return e.PosAvail }

// IsHandled reports whether the event has been marked as handled.
func (e *Event) IsHandled() bool { return e.handled }

// SetHandled marks the event as handled, stopping further dispatch.
func (e *Event) SetHandled() { e.handled = true }

func (e *Event) String() string {
	if e.PosAvail {
		return fmt.Sprintf("%v{Pos: %v}", e.Typ, e.Pos)
	}
	return fmt.Sprintf("%v{Source: %q, Data: %q}", e.Typ, e.Source, e.Data)
}
