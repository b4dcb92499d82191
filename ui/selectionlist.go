// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/slateui/slate/events"
)

// Item is one entry in a [SelectionList]: its display text and an
// optional object ID for per-item theming.
type Item struct {
	Text     string
	ObjectID string
}

// Items is a convenience for building a list of plain text items.
func Items(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{Text: t}
	}
	return out
}

// listItem tracks the runtime state of one list entry; its button
// exists only while the entry is in the visible region.
type listItem struct {
	text     string
	objectID string
	selected bool
	button   *Button
}

// SelectionList is a rectangular element holding any number of
// selectable text items displayed as a list, with an automatic scroll
// bar when the items overflow. Pressing an item toggles its selection
// and sends Select/Deselect events; with [WithMultiSelect] several
// items can be selected at once, otherwise selecting one drops any
// other.
type SelectionList struct {
	ElementBase

	rawItems          []Item
	items             []*listItem
	allowMultiSelect  bool
	allowDoubleClicks bool

	listContainer *Container
	itemContainer *Container
	scrollBar     *ScrollBar

	itemHeight            int
	scrollBarWidth        int
	currentScrollBarWidth int
	totalHeight           int
	lowestPos             int

	borderWidth int
	shadowWidth int
	bg          color.RGBA
	borderColor color.RGBA
}

// NewSelectionList creates a selection list with the given relative
// rectangle and items.
func NewSelectionList(mgr *Manager, relRect image.Rectangle, items []Item, opts ...Option) *SelectionList {
	sl := &SelectionList{scrollBarWidth: 20}
	cfg := newConfig(opts)
	sl.ElementBase.init(sl, mgr, relRect, "selection_list", cfg)
	sl.allowMultiSelect = cfg.multiSelect
	sl.allowDoubleClicks = !cfg.noDoubleClicks
	sl.rawItems = items

	sl.readTheme()
	inset := sl.borderWidth + sl.shadowWidth
	sl.listContainer = NewContainer(mgr, sl.RelativeRect.Inset(inset),
		In(sl.Container), WithParent(sl), WithObjectID("#selection_list_container"),
		WithStartingHeight(sl.StartingHeight))
	sl.Rebuild()
	return sl
}

// GetSingleSelection returns the selected item's text, or "" if
// nothing is selected. It errors on a multi-select list, or if more
// than one item is somehow selected.
func (sl *SelectionList) GetSingleSelection() (string, error) {
	if sl.allowMultiSelect {
		return "", ErrMultiSelectList
	}
	var sel []string
	for _, it := range sl.items {
		if it.selected {
			sel = append(sel, it.text)
		}
	}
	switch len(sel) {
	case 0:
		return "", nil
	case 1:
		return sel[0], nil
	}
	return "", fmt.Errorf("%w: %d items selected", ErrMultiSelectList, len(sel))
}

// GetMultiSelection returns the texts of all selected items; it
// errors on a single-select list.
func (sl *SelectionList) GetMultiSelection() ([]string, error) {
	if !sl.allowMultiSelect {
		return nil, ErrSingleSelectList
	}
	var sel []string
	for _, it := range sl.items {
		if it.selected {
			sel = append(sel, it.text)
		}
	}
	return sel, nil
}

// SetItemList replaces the list contents, dropping any selection and
// resetting the scroll position. A scroll bar is added or removed
// depending on whether the items overflow the list.
func (sl *SelectionList) SetItemList(items []Item) {
	sl.rawItems = items
	sl.items = make([]*listItem, len(items))
	for i, it := range items {
		oid := it.ObjectID
		if oid == "" {
			oid = "#item_list_item"
		}
		sl.items[i] = &listItem{text: it.Text, objectID: oid}
	}

	sl.totalHeight = sl.itemHeight * len(sl.items)
	innerH := sl.listContainer.RelativeRect.Dy()
	sl.lowestPos = sl.totalHeight - innerH

	if sl.totalHeight > innerH {
		sl.currentScrollBarWidth = sl.scrollBarWidth
		visible := float32(innerH) / math32.Max(float32(sl.totalHeight), 1)
		if sl.scrollBar != nil {
			sl.scrollBar.ResetScrollPosition()
			sl.scrollBar.SetVisiblePercentage(visible)
		} else {
			sl.scrollBar = NewVerticalScrollBar(sl.Manager,
				image.Rect(-sl.scrollBarWidth, 0, 0, 0), visible,
				In(sl.listContainer), WithParent(sl),
				WithAnchors(Anchors{Left: End, Right: End, Top: Start, Bottom: End}))
		}
	} else {
		if sl.scrollBar != nil {
			sl.scrollBar.Kill()
			sl.scrollBar = nil
		}
		sl.currentScrollBarWidth = 0
	}

	if sl.itemContainer != nil {
		sl.itemContainer.Kill()
	}
	// End-anchored right edge: the max offset is measured from the
	// container's right, so it is negative; image.Rect would
	// re-canonicalize it, hence the literal
	rel := image.Rectangle{Max: image.Pt(-sl.currentScrollBarWidth, 0)}
	sl.itemContainer = NewContainer(sl.Manager, rel,
		In(sl.listContainer), WithParent(sl), WithObjectID("#item_list_container"),
		WithAnchors(Anchors{Left: Start, Right: End, Top: Start, Bottom: End}))

	y := 0
	for _, it := range sl.items {
		if y > sl.itemContainer.Rect.Dy() {
			break
		}
		sl.makeItemButton(it, y)
		y += sl.itemHeight
	}
}

// makeItemButton creates the button for one item at the given vertical
// offset inside the item container, wired into the selection logic.
func (sl *SelectionList) makeItemButton(it *listItem, y int) {
	btn := NewButton(sl.Manager,
		image.Rect(0, y, 0, y+sl.itemHeight), it.text,
		In(sl.itemContainer), WithParent(sl), WithObjectID(it.objectID),
		WithAnchors(Anchors{Left: Start, Right: End, Top: Start, Bottom: Start}))
	it.button = btn
	if it.selected {
		btn.Select()
	}
	item := it
	btn.On(events.Press, func(e *events.Event) {
		sl.onItemPressed(item)
	})
	if sl.allowDoubleClicks {
		btn.On(events.DoubleClick, func(e *events.Event) {
			sl.Send(events.DoubleClick, item.text)
		})
	}
}

// onItemPressed toggles an item's selection, enforcing single-select
// exclusivity and sending Select/Deselect events.
func (sl *SelectionList) onItemPressed(it *listItem) {
	if it.selected {
		it.selected = false
		if it.button != nil {
			it.button.Unselect()
		}
		sl.Send(events.Deselect, it.text)
		return
	}
	it.selected = true
	if it.button != nil {
		it.button.Select()
	}
	sl.Send(events.Select, it.text)
	if sl.allowMultiSelect {
		return
	}
	for _, other := range sl.items {
		if other == it || !other.selected {
			continue
		}
		other.selected = false
		if other.button != nil {
			other.button.Unselect()
		}
		sl.Send(events.Deselect, other.text)
	}
}

// Update repositions item buttons when the scroll bar has moved,
// creating buttons entering the visible region and killing those that
// left it.
func (sl *SelectionList) Update(dt float32) {
	if sl.scrollBar == nil || !sl.scrollBar.HasMovedRecently() {
		return
	}
	adjust := math32.Min(sl.scrollBar.StartPercentage()*float32(sl.totalHeight),
		float32(sl.lowestPos))
	for i, it := range sl.items {
		newY := i*sl.itemHeight - int(adjust)
		if newY >= -sl.itemHeight && newY <= sl.itemContainer.Rect.Dy() {
			if it.button != nil {
				it.button.SetRelativePosition(image.Pt(0, newY))
			} else {
				sl.makeItemButton(it, newY)
			}
		} else if it.button != nil {
			it.button.Kill()
			it.button = nil
		}
	}
}

// SetDimensions resizes the list and its inner containers.
func (sl *SelectionList) SetDimensions(size image.Point) error {
	if err := sl.ElementBase.SetDimensions(size); err != nil {
		return err
	}
	inset := sl.borderWidth + sl.shadowWidth
	if err := sl.listContainer.SetDimensions(image.Pt(size.X-2*inset, size.Y-2*inset)); err != nil {
		return err
	}
	sl.redraw()
	return nil
}

// SetRelativePosition moves the list and its inner containers.
func (sl *SelectionList) SetRelativePosition(pos image.Point) {
	sl.ElementBase.SetRelativePosition(pos)
	inset := sl.borderWidth + sl.shadowWidth
	sl.listContainer.SetRelativePosition(pos.Add(image.Pt(inset, inset)))
}

// Kill kills the list and everything inside it.
func (sl *SelectionList) Kill() {
	if sl.listContainer != nil {
		sl.listContainer.Kill()
	}
	sl.ElementBase.Kill()
}

// Rebuild re-reads theming data, redraws the panel, and lays the item
// list out again.
func (sl *SelectionList) Rebuild() {
	sl.readTheme()
	sl.redraw()
	sl.SetItemList(sl.rawItems)
}

func (sl *SelectionList) readTheme() {
	ids := sl.ThemeIDs()
	th := sl.Manager.Theme()
	sl.bg = th.Color(ids, "dark_bg")
	sl.borderColor = th.Color(ids, "normal_border")
	sl.borderWidth = th.MiscInt(ids, "border_width", 1)
	sl.shadowWidth = th.MiscInt(ids, "shadow_width", 2)
	sl.itemHeight = th.MiscInt(ids, "list_item_height", 20)
}

func (sl *SelectionList) redraw() {
	sz := sl.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		sl.setDisplayed(nil)
		return
	}
	sl.setDisplayed(panelSurface(sz, sl.bg, sl.borderColor, sl.borderWidth, sl.shadowWidth))
}
