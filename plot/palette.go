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
	"fmt"
	"image/color"

	"techradar/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color definitions for drawing
var (
	ClrWhite = &color.RGBA{255, 255, 255, 255}
	ClrBlack = &color.RGBA{0, 0, 0, 255}
	ClrGrey  = &color.RGBA{128, 128, 128, 255}
	ClrAxis  = &color.RGBA{255, 255, 255, 255}
)

// ParseColor decodes a "#rrggbb" or "#rgb" color value.
func ParseColor(s string) (*color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrColor, s)
	}
	r, g, b := c.RGB255()
	return &color.RGBA{r, g, b, 255}, nil
}

// Palette maps quadrants to their base color
type Palette map[core.Order]*color.RGBA

// Base color of a quadrant (grey if not configured)
func (p Palette) Base(o core.Order) *color.RGBA {
	if clr, ok := p[o]; ok {
		return clr
	}
	return ClrGrey
}

// Band returns the color of ring band i (of n): bands fade from the base
// color towards white (center outwards).
func (p Palette) Band(o core.Order, i, n int) *color.RGBA {
	base, _ := colorful.MakeColor(p.Base(o))
	white := colorful.Color{R: 1, G: 1, B: 1}
	f := 0.3
	if n > 1 {
		f += 0.5 * float64(i) / float64(n-1)
	}
	r, g, b := base.BlendLab(white, f).Clamped().RGB255()
	return &color.RGBA{r, g, b, 255}
}

// hex representation of a color
func hex(clr *color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", clr.R, clr.G, clr.B)
}
