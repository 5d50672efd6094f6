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
	"sync"
	"time"

	"techradar/core"
)

//----------------------------------------------------------------------
// The controller keeps the presentation state of an interactive radar
// (opacity, highlighted and expanded blips) and drives the transform
// engine on user actions. UI effects outside the plot (tooltips,
// scrolling the blip list) go through a Presenter; delayed effects are
// handed to the scheduler.
//----------------------------------------------------------------------

// Presenter shows UI effects outside the plot
type Presenter interface {
	// ShowTip shows the tooltip of a blip at a plot position
	ShowTip(b *core.Blip, pos *core.Position)

	// HideTip removes the tooltip
	HideTip()

	// ScrollTo brings the list entry of a blip into view
	ScrollTo(b *core.Blip)
}

// Look is the presentation state of the plot
type Look struct {
	Quadrants map[core.Order]float64 // quadrant group opacity
	Blips     map[int]float64        // blip opacity
	Expanded  int                    // blip with expanded description
	Hover     int                    // blip under the pointer
	Clicked   int                    // blip marked by click or search
}

// QuadrantOpacity of a quadrant group
func (l *Look) QuadrantOpacity(o core.Order) float64 {
	if l == nil {
		return 1
	}
	if v, ok := l.Quadrants[o]; ok {
		return v
	}
	return 1
}

// BlipOpacity of a blip group
func (l *Look) BlipOpacity(num int) float64 {
	if l == nil {
		return 1
	}
	if v, ok := l.Blips[num]; ok {
		return v
	}
	return 1
}

// Highlighted returns true if a blip is marked
func (l *Look) Highlighted(num int) bool {
	if l == nil || num == 0 {
		return false
	}
	return l.Hover == num || l.Clicked == num
}

func (l *Look) clone() *Look {
	c := &Look{
		Quadrants: make(map[core.Order]float64),
		Blips:     make(map[int]float64),
		Expanded:  l.Expanded,
		Hover:     l.Hover,
		Clicked:   l.Clicked,
	}
	for k, v := range l.Quadrants {
		c.Quadrants[k] = v
	}
	for k, v := range l.Blips {
		c.Blips[k] = v
	}
	return c
}

func newLook() *Look {
	return &Look{
		Quadrants: make(map[core.Order]float64),
		Blips:     make(map[int]float64),
	}
}

//----------------------------------------------------------------------

// Controller handles user actions on a plotted radar
type Controller struct {
	sess  *Session
	sched *Scheduler
	pres  Presenter
	short time.Duration // delay in an already selected quadrant
	long  time.Duration // delay after a focus transition
	anim  time.Duration // transition duration
	dim   float64       // opacity of dimmed elements

	lock sync.Mutex
	look *Look
}

// NewController creates a controller for a plotted session.
func NewController(s *Session, sched *Scheduler, pres Presenter, ui *UICfg) (*Controller, error) {
	if s.Engine() == nil {
		return nil, ErrNoLayout
	}
	anim := core.Configuration().AnimationDuration
	return &Controller{
		sess:  s,
		sched: sched,
		pres:  pres,
		short: time.Duration(ui.ShortDelay) * time.Millisecond,
		long:  anim + time.Duration(ui.Settle)*time.Millisecond,
		anim:  anim,
		dim:   ui.Dimmed,
		look:  newLook(),
	}, nil
}

// Look returns a copy of the presentation state
func (c *Controller) Look() *Look {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.look.clone()
}

// State returns the current transform state of the plot
func (c *Controller) State() *core.State {
	return c.sess.Engine().State()
}

// SelectQuadrant focuses a quadrant (quadrant button). Expanded and
// highlighted blips are reset.
func (c *Controller) SelectQuadrant(o core.Order) error {
	q := c.sess.Radar().Quadrant(o)
	if q == nil {
		return fmt.Errorf("%w: '%s'", ErrNoQuadrant, o)
	}
	c.pres.HideTip()
	c.lock.Lock()
	c.look.Expanded, c.look.Hover, c.look.Clicked = 0, 0, 0
	c.look.Blips = make(map[int]float64)
	c.lock.Unlock()
	c.sess.Engine().Select(q.Order, q.StartAngle)
	return nil
}

// Home returns to the full radar view and clears the presentation state.
func (c *Controller) Home() {
	c.pres.HideTip()
	c.lock.Lock()
	c.look = newLook()
	c.lock.Unlock()
	c.sess.Engine().Redraw()
}

// HoverQuadrant dims all other quadrants
func (c *Controller) HoverQuadrant(o core.Order) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, q := range c.sess.Radar().Quadrants {
		if q.Order == o {
			c.look.Quadrants[q.Order] = 1
		} else {
			c.look.Quadrants[q.Order] = c.dim
		}
	}
}

// LeaveQuadrant restores the opacity of all quadrants
func (c *Controller) LeaveQuadrant(o core.Order) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, q := range c.sess.Radar().Quadrants {
		c.look.Quadrants[q.Order] = 1
	}
}

// HoverBlip highlights a blip, dims all others and shows its tooltip.
func (c *Controller) HoverBlip(num int) error {
	b, q := c.sess.Radar().Blip(num)
	if b == nil {
		return fmt.Errorf("%w: %d", ErrNoBlip, num)
	}
	c.lock.Lock()
	c.dimBlips(num)
	c.look.Hover = num
	c.lock.Unlock()
	c.pres.ShowTip(b, c.blipPosition(num, q.Order, c.State()))
	return nil
}

// LeaveBlip restores all blips and hides the tooltip.
func (c *Controller) LeaveBlip(num int) {
	c.lock.Lock()
	c.look.Blips = make(map[int]float64)
	if c.look.Hover == num {
		c.look.Hover = 0
	}
	c.lock.Unlock()
	c.pres.HideTip()
}

// ClickBlip toggles the expanded description of a blip and focuses its
// quadrant. An expanded entry is scrolled into view once the transition
// has settled.
func (c *Controller) ClickBlip(num int) error {
	b, q := c.sess.Radar().Blip(num)
	if b == nil {
		return fmt.Errorf("%w: %d", ErrNoBlip, num)
	}
	selected := c.State().Selected == q.Order

	c.lock.Lock()
	if c.look.Clicked == num {
		c.look.Clicked = 0
	} else {
		c.look.Clicked = num
	}
	expand := c.look.Expanded != num
	c.look.Expanded = 0
	if expand {
		c.look.Expanded = num
	}
	c.lock.Unlock()

	c.sess.Engine().Select(q.Order, q.StartAngle)
	if expand {
		d := c.long
		if selected {
			d = c.short
		}
		c.sched.After(d, "scroll", func() { c.pres.ScrollTo(b) })
	}
	return nil
}

// SearchBlip focuses the quadrant of a blip, expands its description and
// dims all other blips. The tooltip is shown immediately if the quadrant
// was already selected, otherwise after the transition.
func (c *Controller) SearchBlip(num int) error {
	b, q := c.sess.Radar().Blip(num)
	if b == nil {
		return fmt.Errorf("%w: %d", ErrNoBlip, num)
	}
	selected := c.State().Selected == q.Order
	tr := c.sess.Engine().Select(q.Order, q.StartAngle)

	c.lock.Lock()
	c.look.Expanded = num
	c.look.Clicked = num
	c.look.Hover = 0
	c.dimBlips(num)
	c.lock.Unlock()

	pos := c.blipPosition(num, q.Order, tr.To)
	d := c.short
	if selected {
		c.pres.ShowTip(b, pos)
	} else {
		c.pres.HideTip()
		c.sched.After(c.anim, "tooltip", func() { c.pres.ShowTip(b, pos) })
		d = c.long
	}
	c.sched.After(d, "scroll", func() { c.pres.ScrollTo(b) })
	return nil
}

// dimBlips dims all blips except one (lock held by caller)
func (c *Controller) dimBlips(num int) {
	for _, pl := range c.sess.Placements() {
		if pl.Blip.Number == num {
			c.look.Blips[num] = 1
		} else {
			c.look.Blips[pl.Blip.Number] = c.dim
		}
	}
}

// blipPosition returns the position of a blip in a given state
func (c *Controller) blipPosition(num int, o core.Order, st *core.State) *core.Position {
	pl := c.sess.Placement(num)
	if pl == nil {
		return nil
	}
	tr, ok := st.Groups[o]
	if !ok {
		return pl.Pos
	}
	return tr.Apply(pl.Pos)
}
