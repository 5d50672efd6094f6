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
	"math"
	"strings"
	"testing"
	"time"

	"techradar/core"
)

// loadSession plots the radar of a configuration file
func loadSession(t *testing.T, fn string) *Session {
	t.Helper()
	loadConfig(t, fn)
	r, err := Cfg.Radar()
	if err != nil {
		t.Fatal(err)
	}
	pal, err := Cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSession(r, pal, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Plot(); err != nil {
		t.Fatal(err)
	}
	return s
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSessionPlot(t *testing.T) {
	s := loadSession(t, "testdata/radar.yaml")
	if n := len(s.Placements()); n != 10 {
		t.Fatalf("%d placements", n)
	}
	if pl := s.Placement(9); pl == nil || pl.Quadrant != core.Fourth {
		t.Errorf("placement of #9: %v", pl)
	}
	if s.Placement(42) != nil {
		t.Error("placement for unknown blip")
	}
	// first quadrant: axis lines (stroke 10) bound the group on the left
	// and at the top
	b := s.QuadrantBounds(core.First)
	if !nearly(b.Left, 295) || !nearly(b.Top, -7) || !nearly(b.Right, 605) {
		t.Errorf("first quadrant bounds %+v", b)
	}
	c := s.ContainerBounds()
	if !nearly(c.Left, -5) || c.Bottom < 600 {
		t.Errorf("container bounds %+v", c)
	}
	if s.Stats()[core.EvBlipPlaced]+s.Stats()[core.EvOverlapAccepted] != 10 {
		t.Errorf("events: %v", s.Stats())
	}
}

func TestSessionDeterminism(t *testing.T) {
	s1 := loadSession(t, "testdata/radar.yaml")
	s2 := loadSession(t, "testdata/radar.yaml")
	for i, pl := range s1.Placements() {
		if *pl.Pos != *s2.Placements()[i].Pos {
			t.Errorf("blip %d: %s != %s", pl.Blip.Number, pl.Pos, s2.Placements()[i].Pos)
		}
	}
}

func TestSessionReplot(t *testing.T) {
	type result struct {
		pos core.Position
		w   float64
	}
	snapshot := func(s *Session) (list []result) {
		for _, pl := range s.Placements() {
			list = append(list, result{*pl.Pos, pl.Blip.Width})
		}
		return
	}
	compare := func(name string, a, b []result) {
		if len(a) != len(b) {
			t.Fatalf("%s: %d != %d placements", name, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: placement %d: %v != %v", name, i, a[i], b[i])
			}
		}
	}
	loadConfig(t, "testdata/radar.yaml")
	// crowd the outer ring of the first quadrant so blips shrink
	for i := 0; i < 60; i++ {
		Cfg.Quadrants[0].Blips = append(Cfg.Quadrants[0].Blips, &core.Blip{
			Number: 100 + i,
			Name:   "crowd",
			Ring:   "Hold",
		})
	}
	r, err := Cfg.Radar()
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSession(r, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Plot(); err != nil {
		t.Fatal(err)
	}
	first := snapshot(s)
	stats := s.Stats()[core.EvBlipShrunk]
	if stats == 0 {
		t.Fatal("no blip was shrunk")
	}
	if err = s.Plot(); err != nil {
		t.Fatal(err)
	}
	compare("replot", first, snapshot(s))
	if n := s.Stats()[core.EvBlipShrunk]; n != stats {
		t.Errorf("shrink events %d after replot, expected %d", n, stats)
	}

	// a new session on a radar built from the same configuration
	if r, err = Cfg.Radar(); err != nil {
		t.Fatal(err)
	}
	s2, err := NewSession(r, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = s2.Plot(); err != nil {
		t.Fatal(err)
	}
	compare("new session", first, snapshot(s2))
}

func TestSessionRender(t *testing.T) {
	s := loadSession(t, "testdata/radar.yaml")
	now := time.Unix(1700000000, 0)
	s.Engine().SetClock(func() time.Time { return now })

	render := func() string {
		buf := new(bytes.Buffer)
		c := NewSVGCanvas(buf)
		c.Open()
		if err := s.Render(c, s.Engine().State(), nil); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	out := render()
	for _, o := range core.Orders {
		if !strings.Contains(out, `id="`+quadrantID(o)+`" transform="scale(1)"`) {
			t.Errorf("%s: group missing", o)
		}
	}
	if !strings.Contains(out, `id="blip-link-10"`) || !strings.Contains(out, ">Assess<") {
		t.Error("blip group or ring name missing")
	}

	// focus the first quadrant and render the final state
	s.Engine().Select(core.First, 90)
	now = now.Add(time.Second)
	out = render()
	if !strings.Contains(out, `id="quadrant-group-first" transform="translate(-30000,`) {
		t.Error("focus transform missing")
	}
	if strings.Count(out, "scale(0)") != 3 {
		t.Errorf("%d collapsed groups", strings.Count(out, "scale(0)"))
	}
	if !strings.Contains(out, "scale(0.75)") {
		t.Error("label transform missing")
	}
}

func TestWriteListing(t *testing.T) {
	s := loadSession(t, "testdata/radar.yaml")
	buf := new(bytes.Buffer)
	look := &Look{Expanded: 2, Clicked: 2}
	if err := WriteListing(buf, s.Radar(), Cfg.Legend, look); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, line := range []string{
		"^ New or moved",
		"Techniques\n  Adopt\n    ^ 1. Trunk based development\n",
		"    o 2. Pipelines as code <\n        Treat delivery pipelines as versioned code.\n",
		"    o 3. Micro frontends. - web\n",
		"Languages & Frameworks\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q", line)
		}
	}
}
