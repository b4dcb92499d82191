// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	order := []int{}
	ls.Add(Press, func(e *Event) { order = append(order, 1) })
	ls.Add(Press, func(e *Event) { order = append(order, 2) })
	ls.Call(NewPointer(Press, image.Pt(1, 1)))
	// reverse order: last added called first
	assert.Equal(t, []int{2, 1}, order)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	called := 0
	ls.Add(Change, func(e *Event) { called++ })
	ls.Add(Change, func(e *Event) {
		called++
		e.SetHandled()
	})
	ev := New(Change, "#menu", "option")
	ls.Call(ev)
	assert.Equal(t, 1, called)
	assert.True(t, ev.IsHandled())

	// an already handled event is not dispatched again
	ls.Call(ev)
	assert.Equal(t, 1, called)
}

func TestListenersTypeFilter(t *testing.T) {
	var ls Listeners
	called := false
	ls.Add(Select, func(e *Event) { called = true })
	ls.Call(New(Deselect, "#list", "item"))
	assert.False(t, called)
}

func TestEventAccessors(t *testing.T) {
	pe := NewScroll(image.Pt(3, 4), -1.5)
	assert.True(t, pe.HasPos())
	assert.Equal(t, Scroll, pe.Type())
	assert.Equal(t, float32(-1.5), pe.ScrollDelta)

	ee := New(Select, "#list", "apple")
	assert.False(t, ee.HasPos())
	assert.Contains(t, ee.String(), "apple")
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "release", Release.String())
	assert.Equal(t, "unknown", Unknown.String())
}
