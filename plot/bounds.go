//----------------------------------------------------------------------
// This file is part of techradar-plot.
// Copyright (C) 2022 Bernd Fix >Y<
//
// techradar-plot is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// techradar-plot is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package plot

import (
	"image/color"
	"math"

	"techradar/core"
)

// emptyBox is the neutral element for union.
func emptyBox() core.Box {
	return core.Box{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
}

// union of a box and a point
func union(b core.Box, x, y float64) core.Box {
	b.Left = math.Min(b.Left, x)
	b.Top = math.Min(b.Top, y)
	b.Right = math.Max(b.Right, x)
	b.Bottom = math.Max(b.Bottom, y)
	return b
}

// isEmpty returns true if no point was added to the box
func isEmpty(b core.Box) bool {
	return b.Left > b.Right || b.Top > b.Bottom
}

//----------------------------------------------------------------------

// measureCanvas records the extent of all primitives drawn in a group
// (and its parent groups). Transforms are ignored: the radar is measured
// in the full view.
type measureCanvas struct {
	boxes map[string]core.Box
	stack []string
	all   core.Box
}

func newMeasureCanvas() *measureCanvas {
	return &measureCanvas{
		boxes: make(map[string]core.Box),
		all:   emptyBox(),
	}
}

// add a point to the current groups
func (c *measureCanvas) add(x, y float64) {
	c.all = union(c.all, x, y)
	for _, id := range c.stack {
		c.boxes[id] = union(c.boxes[id], x, y)
	}
}

// addRect adds the rectangle around a point
func (c *measureCanvas) addRect(x, y, dx, dy float64) {
	c.add(x-dx, y-dy)
	c.add(x+dx, y+dy)
}

// Box returns the extent of a group
func (c *measureCanvas) Box(id string) (core.Box, bool) {
	b, ok := c.boxes[id]
	if !ok || isEmpty(b) {
		return core.Box{}, false
	}
	return b, true
}

func (c *measureCanvas) Open() {}

func (c *measureCanvas) Start(w, h float64, bg *color.RGBA) {
	c.add(0, 0)
	c.add(w, h)
}

func (c *measureCanvas) Group(id string, tr core.Transform, opacity float64) {
	if _, ok := c.boxes[id]; !ok {
		c.boxes[id] = emptyBox()
	}
	c.stack = append(c.stack, id)
}

func (c *measureCanvas) GroupEnd() {
	if n := len(c.stack); n > 0 {
		c.stack = c.stack[:n-1]
	}
}

func (c *measureCanvas) Sector(cx, cy, r0, r1, a0, a1 float64, clr *color.RGBA) {
	lo, hi := math.Min(a0, a1), math.Max(a0, a1)
	angles := []float64{lo, hi}
	// axis crossings inside the arc extend the box
	for a := math.Ceil(lo/90) * 90; a < hi; a += 90 {
		angles = append(angles, a)
	}
	for _, a := range angles {
		for _, r := range []float64{r0, r1} {
			c.add(arcPoint(cx, cy, r, a))
		}
	}
}

func (c *measureCanvas) Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA) {
	c.addRect(x, y, r+w/2, r+w/2)
}

func (c *measureCanvas) Triangle(x, y, size float64, clr *color.RGBA) {
	c.addRect(x, y, size/2, size/2)
}

// Text extents are estimated from the font size
func (c *measureCanvas) Text(x, y, fs float64, s, anchor string, clr *color.RGBA) {
	w := 0.6 * fs * float64(len([]rune(s)))
	switch anchor {
	case "middle":
		x -= w / 2
	case "end":
		x -= w
	}
	c.add(x, y-fs)
	c.add(x+w, y+fs/4)
}

func (c *measureCanvas) Line(x1, y1, x2, y2, w float64, clr *color.RGBA) {
	c.addRect(x1, y1, w/2, w/2)
	c.addRect(x2, y2, w/2, w/2)
}

func (c *measureCanvas) End() error { return nil }
func (c *measureCanvas) Close()     {}
