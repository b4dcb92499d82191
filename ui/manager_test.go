// Copyright (c) 2026, The Slate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/slateui/slate/events"
	"github.com/slateui/slate/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerDrawLayerOrder(t *testing.T) {
	m := NewManager(image.Pt(100, 100))
	_, err := NewImage(m, image.Rect(0, 0, 50, 50),
		solidRGBA(50, 50, color.RGBA{255, 0, 0, 255}), Premultiplied())
	require.NoError(t, err)
	_, err = NewImage(m, image.Rect(0, 0, 50, 50),
		solidRGBA(50, 50, color.RGBA{0, 0, 255, 255}),
		Premultiplied(), WithStartingHeight(2))
	require.NoError(t, err)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	m.Draw(dst)
	// the higher layer wins where they overlap
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(25, 25))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, dst.RGBAAt(75, 75))
}

func TestManagerDrawSkipsInvisible(t *testing.T) {
	m := NewManager(image.Pt(100, 100))
	im, err := NewImage(m, image.Rect(0, 0, 50, 50),
		solidRGBA(50, 50, color.RGBA{255, 0, 0, 255}), Premultiplied())
	require.NoError(t, err)
	im.SetVisible(false)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	m.Draw(dst)
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, dst.RGBAAt(25, 25))
}

func TestManagerNeedsRedraw(t *testing.T) {
	m := NewManager(image.Pt(100, 100))
	b := NewButton(m, image.Rect(0, 0, 50, 20), "ok")
	assert.True(t, m.NeedsRedraw())

	m.Draw(image.NewRGBA(image.Rect(0, 0, 100, 100)))
	assert.False(t, m.NeedsRedraw())

	b.SetText("changed")
	assert.True(t, m.NeedsRedraw())
}

func TestManagerProcess(t *testing.T) {
	m := NewManager(image.Pt(200, 100))
	b := NewButton(m, image.Rect(10, 10, 110, 40), "ok")

	var pressed []string
	b.On(events.Press, func(e *events.Event) { pressed = append(pressed, e.Data) })

	assert.True(t, m.Process(events.NewPointer(events.Press, image.Pt(50, 20))))
	assert.Equal(t, []string{"ok"}, pressed)

	// outside the button nothing consumes the event
	assert.False(t, m.Process(events.NewPointer(events.Press, image.Pt(150, 80))))
	// events without a position are not routed
	assert.False(t, m.Process(events.New(events.Press, "", "")))
	// hidden elements do not receive events
	b.SetVisible(false)
	assert.False(t, m.Process(events.NewPointer(events.Press, image.Pt(50, 20))))
	assert.Len(t, pressed, 1)
}

func TestManagerProcessTopDown(t *testing.T) {
	m := NewManager(image.Pt(200, 100))
	lower := NewButton(m, image.Rect(0, 0, 100, 40), "lower")
	upper := NewButton(m, image.Rect(0, 0, 100, 40), "upper", WithStartingHeight(2))

	var got string
	lower.On(events.Press, func(e *events.Event) { got = "lower" })
	upper.On(events.Press, func(e *events.Event) { got = "upper" })

	require.True(t, m.Process(events.NewPointer(events.Press, image.Pt(50, 20))))
	assert.Equal(t, "upper", got)
}

func TestManagerProcessRespectsClipping(t *testing.T) {
	m := NewManager(image.Pt(200, 200))
	ct := NewContainer(m, image.Rect(0, 0, 30, 30))
	b := NewButton(m, image.Rect(0, 0, 100, 100), "ok", In(ct))

	var presses int
	b.On(events.Press, func(e *events.Event) { presses++ })

	// inside the part of the button the container leaves visible
	assert.True(t, m.Process(events.NewPointer(events.Press, image.Pt(10, 10))))
	// inside the button's rectangle but clipped away by the container
	assert.False(t, m.Process(events.NewPointer(events.Press, image.Pt(50, 50))))
	assert.Equal(t, 1, presses)
}

func TestManagerCaptureClearedOnKill(t *testing.T) {
	m := NewManager(image.Pt(200, 200))
	sb := NewVerticalScrollBar(m, image.Rect(0, 0, 20, 100), 0.5)

	require.True(t, m.Process(events.NewPointer(events.Press, image.Pt(10, 10))))
	sb.Kill()
	// moves for a dead capture are dropped, not routed
	assert.False(t, m.Process(events.NewPointer(events.Move, image.Pt(10, 50))))
	assert.Zero(t, sb.StartPercentage())
}

func TestManagerSetTheme(t *testing.T) {
	m := NewManager(image.Pt(200, 100))
	b := NewButton(m, image.Rect(0, 0, 100, 40), "ok")

	th := theme.New()
	th.Blocks["button"] = theme.Block{
		Colours: map[string]string{"normal_bg": "#ff0000"},
	}
	m.SetTheme(th)
	assert.Same(t, th, m.Theme())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, b.Displayed().RGBAAt(10, 10))
}

func TestManagerUpdateAppliesPendingTheme(t *testing.T) {
	m := NewManager(image.Pt(200, 100))
	old := m.Theme()

	th := theme.New()
	m.pending.Store(th)
	assert.Same(t, old, m.Theme())

	m.Update(0.016)
	assert.Same(t, th, m.Theme())
}
