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

package core

import (
	"fmt"
	"math"
)

//----------------------------------------------------------------------
// Positions
//----------------------------------------------------------------------

// Position is a coordinate in plot-local pixel space
type Position struct {
	X, Y float64
}

// Distance2 returns the squared distance to another position
func (p *Position) Distance2(pos *Position) float64 {
	dx := p.X - pos.X
	dy := p.Y - pos.Y
	return dx*dx + dy*dy
}

// Collides returns true if the position is inside the square exclusion
// zone of side 2w around another position.
func (p *Position) Collides(pos *Position, w float64) bool {
	return math.Abs(p.X-pos.X) < w && math.Abs(p.Y-pos.Y) < w
}

// String returns a human-readable position
func (p *Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

//----------------------------------------------------------------------
// Angles
//----------------------------------------------------------------------

// ToRadian converts degrees to radians
func ToRadian(deg float64) float64 {
	return math.Pi * deg / 180
}

// ToDegree converts radians to degrees
func ToDegree(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Adjust returns the axis signs of a quadrant sector for blip placement.
// The four sectors mirror the offsets so that they tile the full circle.
func Adjust(startAngle float64) (ax, ay float64) {
	s := ToRadian(startAngle)
	ax = math.Sin(s) - math.Cos(s)
	ay = -math.Cos(s) - math.Sin(s)
	return
}

// SectorAngle returns the angle (degrees, in [0,90]) of a position
// relative to the sector of a quadrant; ok is false if the position lies
// outside the sector.
func SectorAngle(pos *Position, center, startAngle float64) (deg float64, ok bool) {
	ax, ay := Adjust(startAngle)
	dx := (pos.X - center) * ax
	dy := (pos.Y - center) * ay
	const eps = 1e-9
	if dx < -eps || dy < -eps {
		return 0, false
	}
	return ToDegree(math.Atan2(dy, dx)), true
}
