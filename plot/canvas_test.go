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
	"errors"
	"image/png"
	"strings"
	"testing"

	"techradar/core"
)

func TestSVGCanvas(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewSVGCanvas(buf)
	c.Open()
	c.Start(100, 50, ClrWhite)
	c.Group("g1", core.Transform{TX: 1.5, TY: -2, Scale: 0.5}, 0.3)
	c.Circle(10, 10, 5, 1, ClrBlack, ClrGrey)
	c.Triangle(20, 20, 8, ClrGrey)
	c.Text(30, 30, 10, "a<b", "middle", ClrBlack)
	c.GroupEnd()
	c.Sector(50, 50, 0, 40, 90, 0, ClrGrey)
	c.Line(0, 0, 100, 50, 2, ClrBlack)
	if err := c.End(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{
		`viewBox="0 0 10000 5000"`,
		`id="g1"`,
		`transform="translate(150,-200)scale(0.5)"`,
		`opacity="0.3"`,
		`<circle cx="1000" cy="1000" r="500"`,
		`a&lt;b`,
		`text-anchor:middle;font-size:1000px`,
		`</g>`,
		`<path d="M9000,5000 A4000,4000 0 0 0 5000,1000`,
	} {
		if !strings.Contains(out, s) {
			t.Errorf("missing '%s'", s)
		}
	}
	c.Close()
}

func TestPNGCanvas(t *testing.T) {
	buf := new(bytes.Buffer)
	c := NewPNGCanvas(buf, 2)
	c.Open()
	c.Start(60, 40, ClrWhite)
	c.Group("hidden", core.Transform{Scale: 0}, 1)
	c.Circle(10, 10, 5, 0, nil, ClrBlack)
	c.GroupEnd()
	c.Group("visible", core.Identity, 1)
	c.Sector(30, 30, 5, 20, 90, 0, ClrGrey)
	c.Triangle(10, 30, 8, ClrBlack)
	c.Text(30, 10, 8, "Hold", "middle", ClrBlack)
	c.GroupEnd()
	if err := c.End(); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image size %v", b)
	}
	// the circle inside the collapsed group is not drawn
	if r, g, b, _ := img.At(20, 20).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("hidden circle drawn: %d,%d,%d", r>>8, g>>8, b>>8)
	}
	// a point inside the sector is filled
	if r, _, _, _ := img.At(80, 40).RGBA(); r>>8 != 128 {
		t.Errorf("sector not filled: %d", r>>8)
	}
	c.Close()
}

func TestGetCanvas(t *testing.T) {
	for _, mode := range []string{"svg", "PNG"} {
		if _, err := GetCanvas(mode, new(bytes.Buffer), 1); err != nil {
			t.Errorf("%s: %v", mode, err)
		}
	}
	if _, err := GetCanvas("pdf", new(bytes.Buffer), 1); !errors.Is(err, ErrMode) {
		t.Errorf("pdf: %v", err)
	}
}
