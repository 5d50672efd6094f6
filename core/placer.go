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
)

//----------------------------------------------------------------------
// Blip placement: every blip of a ring is placed at a random position
// inside the ring band and the quadrant sector that does not collide with
// the blips already placed in the same ring. If no free spot is found
// after a number of attempts, the blip shrinks by one pixel and the
// search starts over. At the minimum width the last sample is accepted
// even if it overlaps.
//----------------------------------------------------------------------

// Placement is the result for a single blip
type Placement struct {
	Blip     *Blip     // placed blip (width is final)
	Quadrant Order     // quadrant of the blip
	Ring     int       // ring index
	Pos      *Position // coordinate of the blip
	Shrinks  int       // number of width reductions
	Attempts int       // total number of samples drawn
	Overlap  bool      // accepted with collision
}

// Label returns the anchor of the blip number label
func (pl *Placement) Label() *Position {
	return &Position{X: pl.Pos.X, Y: pl.Pos.Y + 4}
}

// Sector is the search area for blips of a ring in a quadrant
type Sector struct {
	Center     float64 // plot center
	MinRadius  float64 // inner radius of ring band
	MaxRadius  float64 // outer radius of ring band
	StartAngle float64 // start angle of quadrant (degrees)
}

// Sample draws a candidate coordinate for a blip of width w. The radius
// is drawn before the angle.
func (s *Sector) Sample(rnd *Random, w float64) *Position {
	lo, hi := s.MinRadius+w/2, s.MaxRadius-w/2
	var radius float64
	if lo > hi {
		// blip wider than the band: stay on the band middle
		radius = (s.MinRadius + s.MaxRadius) / 2
	} else {
		radius = rnd.Float(lo, hi)
	}
	// angular margin so the blip stays inside the sector
	delta := 45.
	if radius > 0 {
		delta = math.Min(ToDegree(math.Asin(math.Min(w/2/radius, 1))), 45)
	}
	angle := ToRadian(float64(rnd.Int(int(math.Ceil(delta)), int(math.Floor(90-delta)))))

	ax, ay := Adjust(s.StartAngle)
	return &Position{
		X: s.Center + radius*math.Cos(angle)*ax,
		Y: s.Center + radius*math.Sin(angle)*ay,
	}
}

// Placer finds coordinates for the blips of a radar
type Placer struct {
	rings    *RingCalculator
	center   float64
	floor    float64 // minimum blip width
	attempts int     // re-samples per width
	listener Listener
}

// NewPlacer creates a placer for a radar.
func NewPlacer(r *Radar, listener Listener) (*Placer, error) {
	rc, err := NewRingCalculator(len(r.Rings), r.Center())
	if err != nil {
		return nil, err
	}
	return &Placer{
		rings:    rc,
		center:   r.Center(),
		floor:    cfg.MinBlipWidth,
		attempts: cfg.MaxAttempts,
		listener: listener,
	}, nil
}

// Rings returns the ring calculator used by the placer
func (p *Placer) Rings() *RingCalculator {
	return p.rings
}

// SetLimits overrides minimum width and attempts per width.
func (p *Placer) SetLimits(floor float64, attempts int) {
	if floor > 0 {
		p.floor = floor
	}
	if attempts > 0 {
		p.attempts = attempts
	}
}

// PlaceQuadrant places all blips of a quadrant ring by ring. Each ring
// gets its own generator and coordinate list; blips start from their
// initial width.
func (p *Placer) PlaceQuadrant(rings []*Ring, q *Quadrant) (list []*Placement) {
	for i, ring := range rings {
		blips := q.RingBlips(ring.Name)
		if len(blips) == 0 {
			continue
		}
		inner, outer := p.rings.Band(i)
		sec := &Sector{
			Center:     p.center,
			MinRadius:  inner,
			MaxRadius:  outer,
			StartAngle: q.StartAngle,
		}
		rnd := NewRingRandom(ring.Name, q.Name)
		var placed []*Position
		for _, b := range blips {
			b.ResetWidth()
			pl := p.Place(b, sec, rnd, placed)
			pl.Ring = i
			pl.Quadrant = q.Order
			p.notify(q, ring, pl)
			placed = append(placed, pl.Pos)
			list = append(list, pl)
		}
	}
	return
}

// Place a single blip in a sector avoiding the given coordinates. The
// blip width is reduced in place if necessary.
func (p *Placer) Place(b *Blip, sec *Sector, rnd *Random, placed []*Position) *Placement {
	pl := &Placement{Blip: b}

	// fit the footprint into the band first
	if band := sec.MaxRadius - sec.MinRadius; b.Width > band {
		w := math.Max(p.floor, math.Floor(band))
		if w < b.Width {
			b.Width = w
			pl.Shrinks++
		}
	}
	collides := func(pos *Position) bool {
		for _, c := range placed {
			if pos.Collides(c, b.Width) {
				return true
			}
		}
		return false
	}
	for {
		pos := sec.Sample(rnd, b.Width)
		pl.Attempts++
		free := false
		for i := 0; i < p.attempts; i++ {
			if !collides(pos) {
				free = true
				break
			}
			pos = sec.Sample(rnd, b.Width)
			pl.Attempts++
		}
		if free || b.Width <= p.floor {
			pl.Pos = pos
			pl.Overlap = !free && collides(pos)
			return pl
		}
		// no spot found: shrink and start over
		b.Width--
		pl.Shrinks++
	}
}

// notify listener about a placement
func (p *Placer) notify(q *Quadrant, r *Ring, pl *Placement) {
	if p.listener == nil {
		return
	}
	if pl.Shrinks > 0 {
		p.listener(&Event{
			Type:     EvBlipShrunk,
			Blip:     pl.Blip,
			Quadrant: q.Order,
			Ring:     r.Name,
			Val:      pl.Blip.Width,
			Pos:      pl.Pos,
		})
	}
	ev := EvBlipPlaced
	if pl.Overlap {
		ev = EvOverlapAccepted
	}
	p.listener(&Event{
		Type:     ev,
		Blip:     pl.Blip,
		Quadrant: q.Order,
		Ring:     r.Name,
		Val:      pl.Blip.Width,
		Pos:      pl.Pos,
	})
}
