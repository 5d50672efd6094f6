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

// ringWeights partition the radius: inner rings get wider bands so they
// stay visually proportionate to the outer rings. Rings beyond the table
// get weight 1.
var ringWeights = []float64{6, 5, 3, 2, 1, 1, 1}

// RingCalculator maps a ring index to its boundary radius
type RingCalculator struct {
	count  int       // number of rings
	radius []float64 // boundary radii (count+1 entries)
}

// NewRingCalculator partitions [0,maxRadius] into 'count' bands.
func NewRingCalculator(count int, maxRadius float64) (*RingCalculator, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRingCount, count)
	}
	if maxRadius <= 0 || math.IsNaN(maxRadius) || math.IsInf(maxRadius, 0) {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidPlotSize, maxRadius)
	}
	// accumulate weights
	sums := make([]float64, count+1)
	for i := 1; i <= count; i++ {
		w := 1.
		if i-1 < len(ringWeights) {
			w = ringWeights[i-1]
		}
		sums[i] = sums[i-1] + w
	}
	rc := &RingCalculator{
		count:  count,
		radius: make([]float64, count+1),
	}
	total := sums[count]
	for i, s := range sums {
		rc.radius[i] = maxRadius * s / total
	}
	// avoid rounding drift on the outer boundary
	rc.radius[count] = maxRadius
	return rc, nil
}

// Count returns the number of rings
func (rc *RingCalculator) Count() int {
	return rc.count
}

// Radius of the i.th ring boundary (0 <= i <= count). Any other index is
// a caller error and panics.
func (rc *RingCalculator) Radius(i int) float64 {
	if i < 0 || i > rc.count {
		panic(fmt.Sprintf("ring index %d out of range [0,%d]", i, rc.count))
	}
	return rc.radius[i]
}

// Band returns inner and outer radius of the i.th ring.
func (rc *RingCalculator) Band(i int) (min, max float64) {
	return rc.Radius(i), rc.Radius(i + 1)
}
