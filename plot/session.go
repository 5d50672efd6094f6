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
	"log/slog"
	"math"
	"strconv"

	"techradar/core"
)

//----------------------------------------------------------------------
// A session is one layout pass over a radar: blips are placed quadrant by
// quadrant (in configuration order), the rendered quadrant groups are
// measured once, and the transform engine works on these bounds until a
// new session is started.
//----------------------------------------------------------------------

// Session for plotting a radar
type Session struct {
	radar  *core.Radar
	pal    Palette
	bg     *color.RGBA
	log    *slog.Logger
	placer *core.Placer
	engine *core.TransformEngine
	list   []*core.Placement
	byQuad map[core.Order][]*core.Placement
	bounds map[core.Order]core.Box
	cont   core.Container
	stats  map[int]int
}

// NewSession creates a plot session for a radar.
func NewSession(r *core.Radar, pal Palette, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		radar:  r,
		pal:    pal,
		bg:     ClrWhite,
		log:    log,
		byQuad: make(map[core.Order][]*core.Placement),
		bounds: make(map[core.Order]core.Box),
		stats:  make(map[int]int),
	}
	var err error
	if s.placer, err = core.NewPlacer(r, s.onEvent); err != nil {
		return nil, err
	}
	return s, nil
}

// Plot places all blips and captures the bounds of the quadrant groups.
// Every call starts over from the initial blip widths.
func (s *Session) Plot() error {
	s.list = nil
	s.byQuad = make(map[core.Order][]*core.Placement)
	s.bounds = make(map[core.Order]core.Box)
	s.stats = make(map[int]int)
	s.radar.ResetWidths()
	for _, q := range s.radar.Quadrants {
		list := s.placer.PlaceQuadrant(s.radar.Rings, q)
		s.byQuad[q.Order] = list
		s.list = append(s.list, list...)
	}
	s.log.Info("radar plotted",
		"blips", len(s.list),
		"shrunk", s.stats[core.EvBlipShrunk],
		"overlaps", s.stats[core.EvOverlapAccepted])

	// measure the full view
	mc := newMeasureCanvas()
	if err := s.Render(mc, nil, nil); err != nil {
		return err
	}
	for _, q := range s.radar.Quadrants {
		b, ok := mc.Box(quadrantID(q.Order))
		if !ok {
			return fmt.Errorf("%w: empty quadrant group '%s'", ErrNoLayout, q.Order)
		}
		s.bounds[q.Order] = b
	}
	s.cont = core.Container{Box: mc.all}

	s.engine = core.NewTransformEngine(s.radar, s, s.onEvent)
	s.engine.SetPlacements(s.list)
	return nil
}

// SetBackground sets the background color (nil for transparent)
func (s *Session) SetBackground(clr *color.RGBA) {
	s.bg = clr
}

// Radar returns the plotted radar
func (s *Session) Radar() *core.Radar {
	return s.radar
}

// Engine returns the transform engine (nil before Plot)
func (s *Session) Engine() *core.TransformEngine {
	return s.engine
}

// Placements returns all placed blips (quadrant by quadrant, ring by ring)
func (s *Session) Placements() []*core.Placement {
	return s.list
}

// Placement returns the placement of a blip (or nil)
func (s *Session) Placement(num int) *core.Placement {
	for _, pl := range s.list {
		if pl.Blip.Number == num {
			return pl
		}
	}
	return nil
}

// Stats returns the number of engine events by type
func (s *Session) Stats() map[int]int {
	return s.stats
}

// QuadrantBounds returns the bounds of a rendered quadrant group
func (s *Session) QuadrantBounds(o core.Order) core.Box {
	return s.bounds[o]
}

// ContainerBounds returns the bounds of the plot container
func (s *Session) ContainerBounds() core.Container {
	return s.cont
}

// Height of the drawing (radar plus space for the ring labels)
func (s *Session) Height() float64 {
	return math.Max(s.radar.Size, s.cont.Bottom)
}

// onEvent is the listener for engine events
func (s *Session) onEvent(ev *core.Event) {
	s.stats[ev.Type]++
	switch ev.Type {
	case core.EvBlipPlaced, core.EvBlipShrunk, core.EvOverlapAccepted:
		s.log.Debug("blip "+core.EventName(ev.Type),
			"blip", ev.Blip.Number,
			"quadrant", string(ev.Quadrant),
			"ring", ev.Ring,
			"width", ev.Blip.Width,
			"pos", ev.Pos.String())
	case core.EvQuadrantSelected:
		s.log.Info("quadrant selected", "quadrant", string(ev.Quadrant), "startAngle", ev.Val)
	case core.EvFullView:
		s.log.Info("full view")
	}
}

//----------------------------------------------------------------------
// Drawing
//----------------------------------------------------------------------

func quadrantID(o core.Order) string {
	return "quadrant-group-" + string(o)
}

func blipID(num int) string {
	return "blip-link-" + strconv.Itoa(num)
}

// Render the radar in a given state onto a canvas. A nil state is the
// full view; a nil look draws all elements opaque.
func (s *Session) Render(c Canvas, st *core.State, look *Look) error {
	size := s.radar.Size
	c.Start(size, s.Height(), s.bg)
	for _, q := range s.radar.Quadrants {
		tr := core.Identity
		if st != nil {
			if t, ok := st.Groups[q.Order]; ok {
				tr = t
			}
		}
		c.Group(quadrantID(q.Order), tr, look.QuadrantOpacity(q.Order))
		s.drawQuadrant(c, q)
		for _, pl := range s.byQuad[q.Order] {
			lt := core.Identity
			if st != nil {
				if t, ok := st.Labels[pl.Blip.Number]; ok {
					lt = t
				}
			}
			c.Group(blipID(pl.Blip.Number), lt, look.BlipOpacity(pl.Blip.Number))
			s.drawBlip(c, pl, look.Highlighted(pl.Blip.Number))
			c.GroupEnd()
		}
		c.GroupEnd()
	}
	return c.End()
}

// drawQuadrant draws ring bands, axis lines and ring names
func (s *Session) drawQuadrant(c Canvas, q *core.Quadrant) {
	rc := s.placer.Rings()
	center := s.radar.Center()
	n := rc.Count()
	for i := 0; i < n; i++ {
		c.Sector(center, center, rc.Radius(i), rc.Radius(i+1),
			q.StartAngle, q.StartAngle-90, s.pal.Band(q.Order, i, n))
	}
	// axis lines
	size := s.radar.Size
	a0, a1 := core.ToRadian(q.StartAngle), core.ToRadian(q.StartAngle-90)
	startX := size * (1 - (-math.Sin(a0)+1)/2)
	endX := size * (1 - (-math.Sin(a1)+1)/2)
	startY := size * (1 - (math.Cos(a0)+1)/2)
	endY := size * (1 - (math.Cos(a1)+1)/2)
	if startY > endY {
		startY, endY = endY, startY
	}
	c.Line(center, startY-2, center, endY+2, 10, ClrAxis)
	c.Line(endX, center, startX, center, 10, ClrAxis)

	// ring names along the horizontal axis
	for i, ring := range s.radar.Rings {
		x := (rc.Radius(i) + rc.Radius(i+1)) / 2
		if q.Order.LeftHalf() {
			x = center - x
		} else {
			x = center + x
		}
		c.Text(x, center+4, 10, ring.Name, "middle", ClrBlack)
	}
}

// drawBlip draws the blip shape and its number
func (s *Session) drawBlip(c Canvas, pl *core.Placement, hilite bool) {
	b := pl.Blip
	clr := s.pal.Base(pl.Quadrant)
	if b.IsNew {
		c.Triangle(pl.Pos.X, pl.Pos.Y, b.Width, clr)
	} else {
		c.Circle(pl.Pos.X, pl.Pos.Y, b.Width/2, 0, nil, clr)
	}
	if hilite {
		c.Circle(pl.Pos.X, pl.Pos.Y, b.Width/2+2, 2, ClrBlack, nil)
	}
	lbl := pl.Label()
	c.Text(lbl.X, lbl.Y, b.FontSize(), strconv.Itoa(b.Number), "middle", ClrWhite)
}
