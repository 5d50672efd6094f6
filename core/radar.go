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
	"strconv"

	"github.com/bfix/gospel/data"
)

//----------------------------------------------------------------------
// A radar is a square plot of size S, partitioned into concentric rings
// (center outwards) and four quadrants of 90° each. Every blip belongs to
// exactly one ring and one quadrant. Blip widths are mutated during a
// layout pass (see Placer) and are final once placement returns.
//----------------------------------------------------------------------

// Order is the fixed label of a quadrant.
type Order string

// Quadrant orders (rendering order is fixed by configuration)
const (
	First  Order = "first"
	Second Order = "second"
	Third  Order = "third"
	Fourth Order = "fourth"
)

// Orders lists all quadrant labels
var Orders = []Order{First, Second, Third, Fourth}

// Valid returns true for a known quadrant label
func (o Order) Valid() bool {
	switch o {
	case First, Second, Third, Fourth:
		return true
	}
	return false
}

// LeftHalf returns true for quadrants on the left side of the radar.
func (o Order) LeftHalf() bool {
	return o == Second || o == Third
}

// DefaultStartAngle returns the conventional start angle for a quadrant.
func (o Order) DefaultStartAngle() float64 {
	switch o {
	case First:
		return 90
	case Second:
		return 0
	case Third:
		return -90
	}
	return -180
}

//----------------------------------------------------------------------

// Ring is a concentric band of the radar
type Ring struct {
	Order int    `json:"order" yaml:"order"`
	Name  string `json:"name" yaml:"name"`
}

// Blip is a labeled marker in a ring/quadrant
type Blip struct {
	Number      int     `json:"number" yaml:"number"`
	Name        string  `json:"name" yaml:"name"`
	Ring        string  `json:"ring" yaml:"ring"`
	IsNew       bool    `json:"isNew" yaml:"isNew"`
	Width       float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Topic       string  `json:"topic,omitempty" yaml:"topic,omitempty"`

	initial float64 // width before the first layout pass
}

// ResetWidth restores the width the blip had before any layout pass.
func (b *Blip) ResetWidth() {
	if b.initial > 0 {
		b.Width = b.initial
	}
}

// FontSize of the blip label (derived from the current width)
func (b *Blip) FontSize() float64 {
	return b.Width * 10 / 22
}

// Label returns the list entry text of a blip
func (b *Blip) Label() string {
	s := strconv.Itoa(b.Number) + ". " + b.Name
	if len(b.Topic) > 0 {
		s += ". - " + b.Topic
	}
	return s
}

// String returns a human-readable representation of the blip
func (b *Blip) String() string {
	return fmt.Sprintf("Blip{#%d %s @ %s, w=%.0f}", b.Number, b.Name, b.Ring, b.Width)
}

// Quadrant is a 90° sector of the radar
type Quadrant struct {
	Order      Order   `json:"order" yaml:"order"`
	Name       string  `json:"name" yaml:"name"`
	StartAngle float64 `json:"startAngle" yaml:"startAngle"`
	Blips      []*Blip `json:"blips" yaml:"blips"`
}

// Blips in the quadrant that belong to a ring (input order)
func (q *Quadrant) RingBlips(ring string) (list []*Blip) {
	for _, b := range q.Blips {
		if b.Ring == ring {
			list = append(list, b)
		}
	}
	return
}

//----------------------------------------------------------------------

// Radar holds the rings, quadrants and the plot size
type Radar struct {
	Size      float64
	Rings     []*Ring
	Quadrants []*Quadrant

	numbers *data.BloomFilter // blip numbers on the radar
}

// NewRadar checks a radar definition and returns it ready for plotting.
// Blips without an explicit width get the configured default.
func NewRadar(size float64, rings []*Ring, quads []*Quadrant) (*Radar, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlotSize, size)
	}
	if len(rings) == 0 {
		return nil, ErrInvalidRingCount
	}
	if len(quads) != len(Orders) {
		return nil, fmt.Errorf("%w: got %d", ErrQuadrantCount, len(quads))
	}
	known := make(map[string]bool)
	for i, r := range rings {
		if r.Order != i {
			return nil, fmt.Errorf("%w: '%s' has order %d at position %d", ErrRingOrder, r.Name, r.Order, i)
		}
		known[r.Name] = true
	}
	seen := make(map[Order]bool)
	sectors := make(map[float64]Order)
	numbers := newNumberSet(quads)
	for _, q := range quads {
		if !q.Order.Valid() || seen[q.Order] {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidOrder, q.Order)
		}
		seen[q.Order] = true
		if err := checkStartAngle(q.StartAngle); err != nil {
			return nil, fmt.Errorf("quadrant '%s': %w", q.Order, err)
		}
		a := normAngle(q.StartAngle)
		if o, ok := sectors[a]; ok {
			return nil, fmt.Errorf("quadrant '%s': %w: %v (sector of '%s')", q.Order, ErrInvalidStartAngle, q.StartAngle, o)
		}
		sectors[a] = q.Order
		for _, b := range q.Blips {
			// the first radar built on a blip records its initial width
			if b.initial == 0 {
				if b.Width == 0 {
					b.Width = cfg.BlipWidth
				}
				b.initial = b.Width
			}
			if b.Number <= 0 || b.Width < 0 {
				return nil, fmt.Errorf("%w: %s", ErrInvalidBlip, b)
			}
			if !known[b.Ring] {
				return nil, fmt.Errorf("%w: %s", ErrUnknownRing, b)
			}
			if numbers.add(b.Number) {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateBlip, b.Number)
			}
		}
	}
	return &Radar{
		Size:      size,
		Rings:     rings,
		Quadrants: quads,
		numbers:   numbers.pf,
	}, nil
}

// Center of the plot (rounded)
func (r *Radar) Center() float64 {
	return math.Round(r.Size / 2)
}

// Quadrant returns the quadrant with given order (or nil)
func (r *Radar) Quadrant(o Order) *Quadrant {
	for _, q := range r.Quadrants {
		if q.Order == o {
			return q
		}
	}
	return nil
}

// Blip returns a blip and its quadrant by number
func (r *Radar) Blip(num int) (*Blip, *Quadrant) {
	if !r.HasBlip(num) {
		return nil, nil
	}
	for _, q := range r.Quadrants {
		for _, b := range q.Blips {
			if b.Number == num {
				return b, q
			}
		}
	}
	return nil, nil
}

// HasBlip returns false if a blip number is definitely not on the radar.
// A true result can be a false positive; use Blip for an exact lookup.
func (r *Radar) HasBlip(num int) bool {
	if r.numbers == nil {
		return true
	}
	return r.numbers.Contains(numberKey(num))
}

// ResetWidths restores the initial width of all blips.
func (r *Radar) ResetWidths() {
	for _, q := range r.Quadrants {
		for _, b := range q.Blips {
			b.ResetWidth()
		}
	}
}

// normAngle maps an angle to [0,360)
func normAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// checkStartAngle rejects sector starts that do not tile the circle.
func checkStartAngle(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.Mod(a, 90) != 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStartAngle, a)
	}
	return nil
}

//----------------------------------------------------------------------

// numberSet detects duplicate blip numbers. The bloom filter answers most
// lookups; only positive answers are confirmed against the exact list.
// The filter stays with the radar for blip lookups.
type numberSet struct {
	pf   *data.BloomFilter
	list map[int]struct{}
}

func newNumberSet(quads []*Quadrant) *numberSet {
	n := 2
	for _, q := range quads {
		n += len(q.Blips)
	}
	return &numberSet{
		pf:   data.NewBloomFilter(n, 1./float64(n)),
		list: make(map[int]struct{}),
	}
}

// add a number to the set; returns true if it was already present.
func (s *numberSet) add(num int) bool {
	key := numberKey(num)
	if s.pf.Contains(key) {
		if _, ok := s.list[num]; ok {
			return true
		}
	}
	s.pf.Add(key)
	s.list[num] = struct{}{}
	return false
}

func numberKey(num int) []byte {
	return []byte(strconv.Itoa(num))
}
