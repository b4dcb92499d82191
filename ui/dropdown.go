// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"
	"slices"

	"github.com/slateui/slate/events"
)

// ExpandDirection controls which way a [DropDown] opens.
type ExpandDirection int32

const (
	// ExpandAuto opens downward unless there is not enough room
	// below the menu in the window.
	ExpandAuto ExpandDirection = iota

	// ExpandDown always opens below the menu.
	ExpandDown

	// ExpandUp always opens above the menu.
	ExpandUp
)

const (
	expandDownArrow = "▼"
	expandUpArrow   = "▲"
)

// DropDown is a menu with two states: closed, showing the currently
// chosen option and an expand arrow button; and expanded, adding a
// [SelectionList] of all the options. Picking an option closes the
// menu, updates the chosen option, and sends a Change event.
type DropDown struct {
	ElementBase

	options  []string
	selected string

	expanded         bool
	direction        ExpandDirection
	closeButtonWidth int

	currentButton *Button
	expandButton  *Button
	optionsList   *SelectionList

	itemHeight  int
	borderWidth int
	shadowWidth int
	bg          color.RGBA
	borderColor color.RGBA
}

// NewDropDown creates a drop down menu with the given options,
// starting on startingOption (or the first option if it is empty or
// not in the list).
func NewDropDown(mgr *Manager, relRect image.Rectangle, options []string, startingOption string, opts ...Option) (*DropDown, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	dd := &DropDown{
		options:          slices.Clone(options),
		selected:         startingOption,
		closeButtonWidth: 20,
	}
	if !slices.Contains(options, dd.selected) {
		dd.selected = options[0]
	}
	cfg := newConfig(opts)
	dd.ElementBase.init(dd, mgr, relRect, "drop_down_menu", cfg)
	dd.direction = cfg.expandDirection
	dd.readTheme()
	dd.redraw()
	dd.makeClosedState()
	return dd, nil
}

// SelectedOption returns the currently chosen option.
func (dd *DropDown) SelectedOption() string { return dd.selected }

// IsExpanded reports whether the options list is currently open.
func (dd *DropDown) IsExpanded() bool { return dd.expanded }

// Options returns the menu's options.
func (dd *DropDown) Options() []string { return slices.Clone(dd.options) }

// makeClosedState builds the two always-present buttons: the current
// option and the expand arrow.
func (dd *DropDown) makeClosedState() {
	main := dd.RelativeRect
	main.Max.X -= dd.closeButtonWidth
	dd.currentButton = NewButton(dd.Manager, main, dd.selected,
		In(dd.Container), WithParent(dd), WithObjectID("#selected_option"),
		WithAnchors(dd.Anchors), WithStartingHeight(dd.StartingHeight+1))
	dd.currentButton.On(events.Press, func(e *events.Event) { dd.toggle() })

	arrow := dd.RelativeRect
	arrow.Min.X = arrow.Max.X - dd.closeButtonWidth
	dd.expandButton = NewButton(dd.Manager, arrow, dd.arrowSymbol(),
		In(dd.Container), WithParent(dd), WithObjectID("#expand_button"),
		WithAnchors(dd.Anchors), WithStartingHeight(dd.StartingHeight+1))
	dd.expandButton.On(events.Press, func(e *events.Event) { dd.toggle() })
}

func (dd *DropDown) toggle() {
	if dd.expanded {
		dd.collapse()
	} else {
		dd.expand()
	}
}

// expand opens the options list below or above the menu.
func (dd *DropDown) expand() {
	if dd.expanded {
		return
	}
	inset := dd.borderWidth + dd.shadowWidth
	listHeight := len(dd.options)*dd.itemHeight + 2*inset

	rel := dd.RelativeRect
	if dd.expandsUp(listHeight) {
		rel.Max.Y = rel.Min.Y
		rel.Min.Y -= listHeight
	} else {
		rel.Min.Y = rel.Max.Y
		rel.Max.Y += listHeight
	}
	dd.optionsList = NewSelectionList(dd.Manager, rel, Items(dd.options...),
		In(dd.Container), WithParent(dd), WithObjectID("#drop_down_options_list"),
		WithAnchors(dd.Anchors), WithStartingHeight(dd.StartingHeight+2),
		WithoutDoubleClicks())
	dd.optionsList.On(events.Select, func(e *events.Event) { dd.pick(e.Data) })
	dd.expanded = true
	dd.expandButton.SetText(dd.arrowSymbol())
}

// collapse closes the options list without changing the chosen option.
func (dd *DropDown) collapse() {
	if !dd.expanded {
		return
	}
	dd.optionsList.Kill()
	dd.optionsList = nil
	dd.expanded = false
	dd.expandButton.SetText(dd.arrowSymbol())
}

// pick chooses an option, closes the menu, and sends a Change event.
func (dd *DropDown) pick(option string) {
	dd.selected = option
	dd.collapse()
	dd.currentButton.SetText(option)
	dd.Send(events.Change, option)
}

// expandsUp decides the direction for a list of the given height.
func (dd *DropDown) expandsUp(listHeight int) bool {
	switch dd.direction {
	case ExpandUp:
		return true
	case ExpandDown:
		return false
	}
	return dd.Rect.Max.Y+listHeight > dd.containerRect().Max.Y &&
		dd.Rect.Min.Y-listHeight >= dd.containerRect().Min.Y
}

func (dd *DropDown) arrowSymbol() string {
	up := dd.direction == ExpandUp
	if dd.direction == ExpandAuto {
		inset := dd.borderWidth + dd.shadowWidth
		up = dd.expandsUp(len(dd.options)*dd.itemHeight + 2*inset)
	}
	if up != dd.expanded {
		return expandUpArrow
	}
	return expandDownArrow
}

// SetDimensions resizes the menu, closing it first if it is open.
func (dd *DropDown) SetDimensions(size image.Point) error {
	dd.collapse()
	if err := dd.ElementBase.SetDimensions(size); err != nil {
		return err
	}
	dd.rebuildButtons()
	dd.redraw()
	return nil
}

// SetRelativePosition moves the menu and its buttons, closing it
// first if it is open.
func (dd *DropDown) SetRelativePosition(pos image.Point) {
	dd.collapse()
	dd.ElementBase.SetRelativePosition(pos)
	dd.rebuildButtons()
}

// Kill kills the menu and its buttons, and the options list if open.
func (dd *DropDown) Kill() {
	dd.collapse()
	if dd.currentButton != nil {
		dd.currentButton.Kill()
	}
	if dd.expandButton != nil {
		dd.expandButton.Kill()
	}
	dd.ElementBase.Kill()
}

// Rebuild re-reads theming data and redraws the menu box.
func (dd *DropDown) Rebuild() {
	dd.readTheme()
	dd.redraw()
}

// rebuildButtons recreates the closed-state buttons after a geometry
// change.
func (dd *DropDown) rebuildButtons() {
	if dd.currentButton != nil {
		dd.currentButton.Kill()
	}
	if dd.expandButton != nil {
		dd.expandButton.Kill()
	}
	dd.makeClosedState()
}

func (dd *DropDown) readTheme() {
	ids := dd.ThemeIDs()
	th := dd.Manager.Theme()
	dd.bg = th.Color(ids, "dark_bg")
	dd.borderColor = th.Color(ids, "normal_border")
	dd.borderWidth = th.MiscInt(ids, "border_width", 1)
	dd.shadowWidth = th.MiscInt(ids, "shadow_width", 2)
	dd.itemHeight = th.MiscInt(ids, "list_item_height", 20)
}

func (dd *DropDown) redraw() {
	sz := dd.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		dd.setDisplayed(nil)
		return
	}
	dd.setDisplayed(panelSurface(sz, dd.bg, dd.borderColor, dd.borderWidth, dd.shadowWidth))
}
