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
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"techradar/core"

	svg "github.com/ajstarks/svgo"
)

// Canvas for drawing the radar. Angles are in degrees, measured clockwise
// from twelve o'clock.
type Canvas interface {
	// Open a canvas (prepare resources)
	Open()

	// Start a new graph of given size
	Start(w, h float64, bg *color.RGBA)

	// Group starts a transformed group of primitives
	Group(id string, tr core.Transform, opacity float64)

	// GroupEnd closes the innermost group
	GroupEnd()

	// Sector primitive (ring band between radius r0 and r1)
	Sector(cx, cy, r0, r1, a0, a1 float64, clr *color.RGBA)

	// Circle primitive
	Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA)

	// Triangle primitive (pointing upwards, centered at x,y)
	Triangle(x, y, size float64, clr *color.RGBA)

	// Text primitive
	Text(x, y, fs float64, s, anchor string, clr *color.RGBA)

	// Line primitive
	Line(x1, y1, x2, y2, w float64, clr *color.RGBA)

	// Finalise graph
	End() error

	// Close a canvas. No further operations are allowed
	Close()
}

// GetCanvas returns a canvas for drawing (factory)
func GetCanvas(mode string, wrt io.Writer, scale float64) (Canvas, error) {
	switch strings.ToLower(mode) {
	case "svg":
		return NewSVGCanvas(wrt), nil
	case "png":
		return NewPNGCanvas(wrt, scale), nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrMode, mode)
}

// arcPoint returns the point at radius r and angle a (degrees) around the
// center (cx,cy).
func arcPoint(cx, cy, r, a float64) (x, y float64) {
	rad := core.ToRadian(a)
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

//----------------------------------------------------------------------
// SVG canvas
//----------------------------------------------------------------------

// SVGCanvas for writing SVG streams. Coordinates are written as integers
// in a grid of 1/prec units per plot unit.
type SVGCanvas struct {
	prec float64
	svg  *svg.SVG
	buf  *bytes.Buffer
	wrt  io.Writer
}

// NewSVGCanvas creates a new SVG canvas writing to wrt
func NewSVGCanvas(wrt io.Writer) *SVGCanvas {
	return &SVGCanvas{
		prec: 0.01,
		buf:  new(bytes.Buffer),
		wrt:  wrt,
	}
}

// Open a canvas (prepare resources)
func (c *SVGCanvas) Open() {
	c.buf.Reset()
	c.svg = svg.New(c.buf)
}

// Start the canvas (new rendering begins)
func (c *SVGCanvas) Start(w, h float64, bg *color.RGBA) {
	c.svg.Startview(int(math.Ceil(w)), int(math.Ceil(h)), 0, 0, c.xlate(w), c.xlate(h))
	if bg != nil {
		c.svg.Rect(0, 0, c.xlate(w), c.xlate(h), "fill:"+hex(bg))
	}
}

// Group starts a transformed group
func (c *SVGCanvas) Group(id string, tr core.Transform, opacity float64) {
	attrs := []string{
		fmt.Sprintf(`id="%s"`, id),
		fmt.Sprintf(`transform="%s"`, tr.Scaled(1/c.prec)),
	}
	if opacity < 1 {
		attrs = append(attrs, fmt.Sprintf(`opacity="%g"`, opacity))
	}
	c.svg.Group(attrs...)
}

// GroupEnd closes a group
func (c *SVGCanvas) GroupEnd() {
	c.svg.Gend()
}

// Sector primitive
func (c *SVGCanvas) Sector(cx, cy, r0, r1, a0, a1 float64, clr *color.RGBA) {
	sweep, large := 0, 0
	if a1 > a0 {
		sweep = 1
	}
	if math.Abs(a1-a0) > 180 {
		large = 1
	}
	x0, y0 := arcPoint(cx, cy, r1, a0)
	x1, y1 := arcPoint(cx, cy, r1, a1)
	x2, y2 := arcPoint(cx, cy, r0, a1)
	x3, y3 := arcPoint(cx, cy, r0, a0)
	ro, ri := c.xlate(r1), c.xlate(r0)
	d := fmt.Sprintf("M%d,%d A%d,%d 0 %d %d %d,%d L%d,%d A%d,%d 0 %d %d %d,%d Z",
		c.xlate(x0), c.xlate(y0), ro, ro, large, sweep, c.xlate(x1), c.xlate(y1),
		c.xlate(x2), c.xlate(y2), ri, ri, large, 1-sweep, c.xlate(x3), c.xlate(y3))
	c.svg.Path(d, "fill:"+hex(clr))
}

// Circle primitive
func (c *SVGCanvas) Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA) {
	fill := "none"
	if clrFill != nil {
		fill = hex(clrFill)
	}
	border := ""
	if w > 0 && clrBorder != nil {
		border = fmt.Sprintf("stroke:%s;stroke-width:%d;", hex(clrBorder), int(w/c.prec))
	}
	style := fmt.Sprintf("%sfill:%s", border, fill)
	c.svg.Circle(c.xlate(x), c.xlate(y), int(r/c.prec), style)
}

// Triangle primitive
func (c *SVGCanvas) Triangle(x, y, size float64, clr *color.RGBA) {
	h := size / 2
	xs := []int{c.xlate(x - h), c.xlate(x), c.xlate(x + h)}
	ys := []int{c.xlate(y + h), c.xlate(y - h), c.xlate(y + h)}
	c.svg.Polygon(xs, ys, "fill:"+hex(clr))
}

// Text primitive
func (c *SVGCanvas) Text(x, y, fs float64, s, anchor string, clr *color.RGBA) {
	style := fmt.Sprintf("text-anchor:%s;font-size:%dpx", anchor, int(fs/c.prec))
	if clr != nil {
		style += ";fill:" + hex(clr)
	}
	c.svg.Text(c.xlate(x), c.xlate(y), s, style)
}

// Line primitive
func (c *SVGCanvas) Line(x1, y1, x2, y2, w float64, clr *color.RGBA) {
	style := "stroke:black;stroke-width:1"
	if w > 0 && clr != nil {
		style = fmt.Sprintf("stroke:%s;stroke-width:%d;", hex(clr), int(w/c.prec))
	}
	c.svg.Line(c.xlate(x1), c.xlate(y1), c.xlate(x2), c.xlate(y2), style)
}

// coordinate translation
func (c *SVGCanvas) xlate(x float64) int {
	return int(math.Round(x / c.prec))
}

// End finalizes the graph and writes it out
func (c *SVGCanvas) End() error {
	c.svg.End()
	_, err := c.wrt.Write(c.buf.Bytes())
	return err
}

// Close a canvas. No further operations are allowed
func (c *SVGCanvas) Close() {
	c.buf = nil
}
