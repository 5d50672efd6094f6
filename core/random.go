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
	"math"
	"unicode/utf16"

	"github.com/MichaelTJones/pcg"
)

// stream selector for all generators (fixed for reproducible layouts)
const pcgStream = 0xda3e39cb94b95bdb

// Random is a reseedable PCG32 source. The same seed always yields the
// same sequence, so a radar lays out identically on every rendering.
type Random struct {
	r    *pcg.PCG32
	seed float64
}

// NewRandom creates a generator from a (float) seed.
func NewRandom(seed float64) *Random {
	r := &Random{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

// RingSeed derives the seed of a ring/quadrant pair: the checksums of
// both names (sum of UTF-16 code units) scaled by the number of code
// units and mixed multiplicatively with π.
func RingSeed(ring, quadrant string) float64 {
	checksum := func(s string) float64 {
		units := utf16.Encode([]rune(s))
		sum := 0
		for _, u := range units {
			sum += int(u)
		}
		return float64(sum * len(units))
	}
	return math.Pi * checksum(ring) * checksum(quadrant)
}

// NewRingRandom returns the generator for a ring/quadrant pair.
func NewRingRandom(ring, quadrant string) *Random {
	return NewRandom(RingSeed(ring, quadrant))
}

// Seed the generator
func (r *Random) Seed(s float64) {
	r.seed = s
	r.r.Seed(math.Float64bits(s), pcgStream)
}

// Value returns the seed value of the generator
func (r *Random) Value() float64 {
	return r.seed
}

// Float returns a uniform random number in [min,max). An inverted range
// is swapped.
func (r *Random) Float(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	u := float64(r.r.Random()) / (1 << 32)
	return min + u*(max-min)
}

// Int returns a uniform random integer in [min,max] (both inclusive).
func (r *Random) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + int(r.r.Bounded(uint32(max-min+1)))
}
