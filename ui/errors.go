// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "errors"

var (
	// ErrInvalidSize is returned when an element is given dimensions
	// without a positive area.
	ErrInvalidSize = errors.New("ui: dimensions must have positive area")

	// ErrNoOptions is returned when a drop down menu is created with
	// no options.
	ErrNoOptions = errors.New("ui: drop down menu requires at least one option")

	// ErrMultiSelectList is returned when a single selection is
	// requested from a multi-select list.
	ErrMultiSelectList = errors.New("ui: single selection requested from multi-select list")

	// ErrSingleSelectList is returned when a multi selection is
	// requested from a single-select list.
	ErrSingleSelectList = errors.New("ui: multi selection requested from single-select list")
)
