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
	"image/png"
	"io"
	"math"

	"techradar/core"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
	"golang.org/x/image/font/gofont/goregular"
)

//----------------------------------------------------------------------
// PNG canvas (software rasterizer)
//----------------------------------------------------------------------

// PNGCanvas renders the radar into an image and writes it as PNG.
type PNGCanvas struct {
	scale  float64 // pixels per plot unit
	be     *softwarebackend.SoftwareBackend
	cv     *canvas.Canvas
	font   *canvas.Font
	wrt    io.Writer
	hidden int // nesting depth inside collapsed (scale 0) groups
	depth  int // group nesting depth
}

// NewPNGCanvas creates a new raster canvas writing to wrt
func NewPNGCanvas(wrt io.Writer, scale float64) *PNGCanvas {
	if scale <= 0 {
		scale = 1
	}
	return &PNGCanvas{
		scale: scale,
		wrt:   wrt,
	}
}

// Open a canvas (prepare resources)
func (c *PNGCanvas) Open() {}

// Start the canvas (new rendering begins)
func (c *PNGCanvas) Start(w, h float64, bg *color.RGBA) {
	c.be = softwarebackend.New(int(math.Ceil(w*c.scale)), int(math.Ceil(h*c.scale)))
	c.cv = canvas.New(c.be)
	c.hidden, c.depth = 0, 0
	if c.font == nil {
		// the embedded font is always valid
		c.font, _ = c.cv.LoadFont(goregular.TTF)
	}
	if bg != nil {
		c.cv.SetFillStyle(hex(bg))
		c.cv.FillRect(0, 0, w*c.scale, h*c.scale)
	}
	c.cv.Scale(c.scale, c.scale)
}

// Group starts a transformed group
func (c *PNGCanvas) Group(id string, tr core.Transform, opacity float64) {
	c.depth++
	if c.hidden > 0 || tr.Scale == 0 || opacity == 0 {
		c.hidden++
		return
	}
	c.cv.Save()
	c.cv.Translate(tr.TX, tr.TY)
	c.cv.Scale(tr.Scale, tr.Scale)
	if opacity < 1 {
		c.cv.SetGlobalAlpha(opacity)
	}
}

// GroupEnd closes a group
func (c *PNGCanvas) GroupEnd() {
	if c.depth == 0 {
		return
	}
	c.depth--
	if c.hidden > 0 {
		c.hidden--
		return
	}
	c.cv.Restore()
}

// Sector primitive
func (c *PNGCanvas) Sector(cx, cy, r0, r1, a0, a1 float64, clr *color.RGBA) {
	if c.hidden > 0 {
		return
	}
	// canvas angles start at three o'clock
	s, e := core.ToRadian(a0-90), core.ToRadian(a1-90)
	ccw := a1 < a0
	c.cv.BeginPath()
	c.cv.Arc(cx, cy, r1, s, e, ccw)
	if r0 > 0 {
		c.cv.Arc(cx, cy, r0, e, s, !ccw)
	} else {
		c.cv.LineTo(cx, cy)
	}
	c.cv.ClosePath()
	c.cv.SetFillStyle(hex(clr))
	c.cv.Fill()
}

// Circle primitive
func (c *PNGCanvas) Circle(x, y, r, w float64, clrBorder, clrFill *color.RGBA) {
	if c.hidden > 0 {
		return
	}
	c.cv.BeginPath()
	c.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	c.cv.ClosePath()
	if clrFill != nil {
		c.cv.SetFillStyle(hex(clrFill))
		c.cv.Fill()
	}
	if w > 0 && clrBorder != nil {
		c.cv.SetStrokeStyle(hex(clrBorder))
		c.cv.SetLineWidth(w)
		c.cv.Stroke()
	}
}

// Triangle primitive
func (c *PNGCanvas) Triangle(x, y, size float64, clr *color.RGBA) {
	if c.hidden > 0 {
		return
	}
	h := size / 2
	c.cv.BeginPath()
	c.cv.MoveTo(x-h, y+h)
	c.cv.LineTo(x, y-h)
	c.cv.LineTo(x+h, y+h)
	c.cv.ClosePath()
	c.cv.SetFillStyle(hex(clr))
	c.cv.Fill()
}

// Text primitive
func (c *PNGCanvas) Text(x, y, fs float64, s, anchor string, clr *color.RGBA) {
	if c.hidden > 0 || fs <= 0 {
		return
	}
	if clr == nil {
		clr = ClrBlack
	}
	switch anchor {
	case "middle":
		c.cv.SetTextAlign(canvas.Center)
	case "end":
		c.cv.SetTextAlign(canvas.Right)
	default:
		c.cv.SetTextAlign(canvas.Left)
	}
	c.cv.SetFont(c.font, fs)
	c.cv.SetFillStyle(hex(clr))
	c.cv.FillText(s, x, y)
}

// Line primitive
func (c *PNGCanvas) Line(x1, y1, x2, y2, w float64, clr *color.RGBA) {
	if c.hidden > 0 {
		return
	}
	if w <= 0 || clr == nil {
		w, clr = 1, ClrBlack
	}
	c.cv.BeginPath()
	c.cv.MoveTo(x1, y1)
	c.cv.LineTo(x2, y2)
	c.cv.SetStrokeStyle(hex(clr))
	c.cv.SetLineWidth(w)
	c.cv.Stroke()
}

// End finalizes the graph and writes the image out
func (c *PNGCanvas) End() error {
	return png.Encode(c.wrt, c.be.Image)
}

// Close a canvas. No further operations are allowed
func (c *PNGCanvas) Close() {
	c.cv, c.be = nil, nil
}
