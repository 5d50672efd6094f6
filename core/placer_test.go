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
	"testing"
)

// plotQuadrant places the blips of a single quadrant on a 600px radar
func plotQuadrant(t *testing.T, o Order, blips []*Blip) ([]*Placement, *Placer, *Quadrant) {
	t.Helper()
	quads := testQuadrants()
	var quad *Quadrant
	for _, q := range quads {
		if q.Order == o {
			q.Blips = blips
			quad = q
		}
	}
	r, err := NewRadar(600, testRings(), quads)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlacer(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	return p.PlaceQuadrant(r.Rings, quad), p, quad
}

// checkContainment verifies ring band and sector of all placements
func checkContainment(t *testing.T, p *Placer, q *Quadrant, list []*Placement) {
	t.Helper()
	center := &Position{X: 300, Y: 300}
	for _, pl := range list {
		lo, hi := p.Rings().Band(pl.Ring)
		d := math.Sqrt(pl.Pos.Distance2(center))
		if d < lo-1e-6 || d > hi+1e-6 {
			t.Errorf("%s: distance %.3f outside band [%v,%v]", pl.Blip, d, lo, hi)
		}
		a, ok := SectorAngle(pl.Pos, 300, q.StartAngle)
		if !ok || a < -1e-6 || a > 90+1e-6 {
			t.Errorf("%s: angle %.3f outside sector of '%s'", pl.Blip, a, q.Order)
		}
	}
}

func TestPlaceScenario(t *testing.T) {
	mk := func() []*Blip {
		list := testBlips(1, 3, "Trial")
		list[0].IsNew, list[1].IsNew, list[2].IsNew = true, false, false
		return list
	}
	list, p, q := plotQuadrant(t, First, mk())
	if len(list) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(list))
	}
	checkContainment(t, p, q, list)
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			if *list[i].Pos == *list[j].Pos {
				t.Errorf("blips %d and %d share a coordinate", i, j)
			}
		}
	}
	// the same input reproduces the same layout
	again, _, _ := plotQuadrant(t, First, mk())
	for i := range list {
		if *list[i].Pos != *again[i].Pos {
			t.Errorf("blip %d: %s != %s", i, list[i].Pos, again[i].Pos)
		}
		if list[i].Blip.Width != again[i].Blip.Width {
			t.Errorf("blip %d: width %v != %v", i, list[i].Blip.Width, again[i].Blip.Width)
		}
	}
}

func TestPlaceContainment(t *testing.T) {
	for _, o := range Orders {
		var blips []*Blip
		for i, ring := range ringNames {
			blips = append(blips, testBlips(10*i+1, 4, ring)...)
		}
		list, p, q := plotQuadrant(t, o, blips)
		if len(list) != len(blips) {
			t.Fatalf("%s: %d placements for %d blips", o, len(list), len(blips))
		}
		checkContainment(t, p, q, list)
	}
}

func TestPlaceOrderByRing(t *testing.T) {
	// blips are processed ring by ring, input order within a ring
	blips := []*Blip{
		{Number: 1, Name: "a", Ring: "Hold", Width: 22},
		{Number: 2, Name: "b", Ring: "Adopt", Width: 22},
		{Number: 3, Name: "c", Ring: "Hold", Width: 22},
		{Number: 4, Name: "d", Ring: "Adopt", Width: 22},
	}
	list, _, _ := plotQuadrant(t, Second, blips)
	expect := []int{2, 4, 1, 3}
	for i, pl := range list {
		if pl.Blip.Number != expect[i] {
			t.Errorf("position %d: expected blip %d, got %d", i, expect[i], pl.Blip.Number)
		}
	}
}

func TestPlaceNoOverlap(t *testing.T) {
	list, _, _ := plotQuadrant(t, Third, testBlips(1, 6, "Adopt"))
	for j, pl := range list {
		if pl.Overlap {
			t.Errorf("%s: overlap accepted", pl.Blip)
		}
		for i := 0; i < j; i++ {
			if pl.Pos.Collides(list[i].Pos, pl.Blip.Width) {
				t.Errorf("%s collides with %s", pl.Blip, list[i].Blip)
			}
		}
	}
}

func TestPlaceOverDense(t *testing.T) {
	list, p, q := plotQuadrant(t, Fourth, testBlips(1, 120, "Hold"))
	shrunk, overlap := 0, 0
	for _, pl := range list {
		if pl.Blip.Width < cfg.MinBlipWidth {
			t.Errorf("%s: width below floor", pl.Blip)
		}
		if pl.Shrinks > 0 {
			shrunk++
		}
		if pl.Overlap {
			overlap++
			if pl.Blip.Width != cfg.MinBlipWidth {
				t.Errorf("%s: overlap above minimum width", pl.Blip)
			}
		}
		// bounded search: one round of samples per width step
		limit := (22 - int(cfg.MinBlipWidth) + 1) * (cfg.MaxAttempts + 1)
		if pl.Attempts > limit {
			t.Errorf("%s: %d attempts (limit %d)", pl.Blip, pl.Attempts, limit)
		}
	}
	if shrunk == 0 {
		t.Error("no blip was shrunk")
	}
	if overlap == 0 {
		t.Error("no overlap accepted in over-dense ring")
	}
	checkContainment(t, p, q, list)
	t.Logf("%d blips: %d shrunk, %d overlapping", len(list), shrunk, overlap)
}

func TestPlaceOversized(t *testing.T) {
	blips := []*Blip{{Number: 1, Name: "huge", Ring: "Hold", Width: 100}}
	list, p, q := plotQuadrant(t, First, blips)
	pl := list[0]
	lo, hi := p.Rings().Band(3)
	if pl.Blip.Width > hi-lo {
		t.Errorf("width %v not reduced to band thickness %v", pl.Blip.Width, hi-lo)
	}
	if pl.Shrinks == 0 {
		t.Error("oversized blip not shrunk")
	}
	checkContainment(t, p, q, list)
}

func TestPlaceEvents(t *testing.T) {
	quads := testQuadrants()
	quads[0].Blips = testBlips(1, 40, "Hold")
	r, err := NewRadar(600, testRings(), quads)
	if err != nil {
		t.Fatal(err)
	}
	counts := make(map[int]int)
	p, err := NewPlacer(r, func(ev *Event) {
		counts[ev.Type]++
		if ev.Quadrant != First || ev.Ring != "Hold" {
			t.Errorf("event for %s/%s", ev.Quadrant, ev.Ring)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	p.SetLimits(0, 50)
	p.PlaceQuadrant(r.Rings, quads[0])
	if counts[EvBlipPlaced]+counts[EvOverlapAccepted] != 40 {
		t.Errorf("placement events: %v", counts)
	}
	if counts[EvBlipShrunk] == 0 {
		t.Errorf("no shrink events: %v", counts)
	}
}

func TestPlaceRepeated(t *testing.T) {
	quads := testQuadrants()
	quads[0].Blips = testBlips(1, 60, "Hold")
	r, err := NewRadar(600, testRings(), quads)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlacer(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	type result struct {
		pos Position
		w   float64
	}
	run := func() (list []result) {
		for _, pl := range p.PlaceQuadrant(r.Rings, quads[0]) {
			list = append(list, result{*pl.Pos, pl.Blip.Width})
		}
		return
	}
	first := run()
	shrunk := false
	for _, res := range first {
		shrunk = shrunk || res.w < 22
	}
	if !shrunk {
		t.Fatal("no blip was shrunk")
	}
	// a radar built again on the same blips keeps their initial width
	if _, err = NewRadar(600, testRings(), quads); err != nil {
		t.Fatal(err)
	}
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("blip %d: %v != %v", i+1, first[i], second[i])
		}
	}
	r.ResetWidths()
	for _, b := range quads[0].Blips {
		if b.Width != 22 {
			t.Errorf("%s: width not restored", b)
		}
	}
}
