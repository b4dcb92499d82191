// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all context
// captured, registered on specific elements.
type Listeners map[Type][]func(e *Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Type][]func(*Event))
}

// Add adds a function for the given type.
func (ls *Listeners) Add(typ Type, fun func(e *Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for the given event. It goes in reverse
// order so the last functions added are the first called, and it stops
// when the event is marked as handled. This allows for a natural and
// optional override behavior.
func (ls *Listeners) Call(e *Event) {
	if e.IsHandled() {
		return
	}
	fns := (*ls)[e.Type()]
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i](e)
		if e.IsHandled() {
			break
		}
	}
}
