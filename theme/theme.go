// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme holds the theming data that slate elements use to
// style themselves, loaded from TOML files and looked up through
// element ID specificity chains.
package theme

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultsID is the block every lookup falls back to.
const DefaultsID = "defaults"

// Block is the set of theming parameters for one element or object ID.
type Block struct {
	// Colours maps color parameter names (e.g. "dark_bg",
	// "normal_border") to hex color strings ("#rrggbb" or "#rrggbbaa").
	Colours map[string]string `toml:"colours"`

	// Misc maps non-color parameter names (e.g. "border_width",
	// "list_item_height") to string values.
	Misc map[string]string `toml:"misc"`
}

// Theme is a set of theming blocks keyed by element or object ID.
// Lookups walk an ID chain from most to least specific and fall back
// to the [DefaultsID] block and then to built-in defaults.
type Theme struct {
	Blocks map[string]Block
}

// New returns a theme containing only the built-in defaults.
func New() *Theme {
	return &Theme{Blocks: map[string]Block{
		DefaultsID: {
			Colours: map[string]string{
				"dark_bg":       "#21282d",
				"normal_bg":     "#45494e",
				"hovered_bg":    "#35393e",
				"selected_bg":   "#193754",
				"normal_border": "#dddddd",
				"normal_text":   "#c5cbd8",
				"scroll_bar":    "#6c7073",
				"scroll_well":   "#2e3236",
			},
			Misc: map[string]string{
				"border_width":     "1",
				"shadow_width":     "2",
				"list_item_height": "20",
			},
		},
	}}
}

// Open loads a theme from the given TOML file, merged over the
// built-in defaults.
func Open(filename string) (*Theme, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	th, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("theme.Open: %s: %w", filename, err)
	}
	return th, nil
}

// Read loads a theme from TOML data, merged over the built-in defaults.
func Read(r io.Reader) (*Theme, error) {
	th := New()
	loaded := map[string]Block{}
	if err := toml.NewDecoder(r).Decode(&loaded); err != nil {
		return nil, err
	}
	for id, blk := range loaded {
		base := th.Blocks[id]
		if base.Colours == nil {
			base.Colours = map[string]string{}
		}
		if base.Misc == nil {
			base.Misc = map[string]string{}
		}
		for k, v := range blk.Colours {
			base.Colours[k] = v
		}
		for k, v := range blk.Misc {
			base.Misc[k] = v
		}
		th.Blocks[id] = base
	}
	return th, nil
}

// Color returns the named color for the given ID chain, most specific
// ID first, falling back to the defaults block and finally to opaque
// black if the name is unknown everywhere.
func (t *Theme) Color(ids []string, name string) color.RGBA {
	for _, id := range t.chain(ids) {
		if blk, ok := t.Blocks[id]; ok {
			if hex, ok := blk.Colours[name]; ok {
				if c, err := ParseHexColor(hex); err == nil {
					return c
				}
			}
		}
	}
	return color.RGBA{A: 255}
}

// Misc returns the named misc parameter for the given ID chain,
// reporting whether it was found.
func (t *Theme) Misc(ids []string, name string) (string, bool) {
	for _, id := range t.chain(ids) {
		if blk, ok := t.Blocks[id]; ok {
			if v, ok := blk.Misc[name]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// MiscInt returns the named misc parameter as an int, or def if it is
// missing or malformed.
func (t *Theme) MiscInt(ids []string, name string, def int) int {
	v, ok := t.Misc(ids, name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func (t *Theme) chain(ids []string) []string {
	out := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return append(out, DefaultsID)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into an RGBA color.
// The returned color is straight (non-premultiplied) alpha.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("theme.ParseHexColor: %q is not a hex color", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("theme.ParseHexColor: %q: %w", s, err)
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
