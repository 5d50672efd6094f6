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
	"time"
)

//----------------------------------------------------------------------
// Focus-zoom: selecting a quadrant moves its group against the edge of
// the plot container and collapses all other quadrant groups (scale 0)
// towards the outer edge of the radar. Blip labels in the focused
// quadrant are scaled down around their own anchor so they stay legible.
// Going back to the full view resets all transforms to identity.
//----------------------------------------------------------------------

// Box is an axis-aligned bounding box
type Box struct {
	Left, Top, Right, Bottom float64
}

// Width of the box
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height of the box
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Container is the bounding box of the plot container with its offset
// inside the page.
type Container struct {
	Box
	OffsetLeft float64
}

// BoundsProvider is implemented by the rendering layer: it reports the
// bounds of the rendered quadrant groups (captured once after layout) and
// of the plot container.
type BoundsProvider interface {
	QuadrantBounds(o Order) Box
	ContainerBounds() Container
}

//----------------------------------------------------------------------

// Transform is a translation followed by a uniform scaling:
// p' = (TX,TY) + Scale*p
type Transform struct {
	TX, TY float64
	Scale  float64
}

// Identity transform
var Identity = Transform{Scale: 1}

// IsIdentity returns true if the transform does not change positions.
func (t Transform) IsIdentity() bool {
	const eps = 1e-9
	return math.Abs(t.TX) < eps && math.Abs(t.TY) < eps && math.Abs(t.Scale-1) < eps
}

// Apply the transform to a position
func (t Transform) Apply(p *Position) *Position {
	return &Position{
		X: t.TX + t.Scale*p.X,
		Y: t.TY + t.Scale*p.Y,
	}
}

// Lerp interpolates between two transforms (f in [0,1])
func (t Transform) Lerp(to Transform, f float64) Transform {
	return Transform{
		TX:    t.TX + (to.TX-t.TX)*f,
		TY:    t.TY + (to.TY-t.TY)*f,
		Scale: t.Scale + (to.Scale-t.Scale)*f,
	}
}

// Scaled returns the transform with translation multiplied by k (used to
// express the transform in a finer coordinate grid).
func (t Transform) Scaled(k float64) Transform {
	return Transform{TX: t.TX * k, TY: t.TY * k, Scale: t.Scale}
}

// String returns the CSS-style representation of the transform
func (t Transform) String() string {
	if t.TX == 0 && t.TY == 0 {
		return "scale(" + num(t.Scale) + ")"
	}
	return "translate(" + num(t.TX) + "," + num(t.TY) + ")scale(" + num(t.Scale) + ")"
}

// ScaleFirst returns the equivalent "scale(s)translate(x,y)" notation.
func (t Transform) ScaleFirst() string {
	if t.Scale == 0 || (t.TX == 0 && t.TY == 0) {
		return t.String()
	}
	return "scale(" + num(t.Scale) + ")translate(" + num(t.TX/t.Scale) + "," + num(t.TY/t.Scale) + ")"
}

// LabelTransform scales a label by s around its anchor (x,y).
func LabelTransform(anchor *Position, s float64) Transform {
	return Transform{
		TX:    (1 - s) * anchor.X,
		TY:    (1 - s) * anchor.Y,
		Scale: s,
	}
}

// num formats a value with at most six decimals
func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		// no negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

//----------------------------------------------------------------------

// State is the set of transforms of all groups in the plot
type State struct {
	Selected Order               // selected quadrant ("" for full view)
	Groups   map[Order]Transform // quadrant group transforms
	Labels   map[int]Transform   // blip group transforms (by blip number)
	Pointer  map[Order]bool      // pointer events enabled on quadrant group
}

// FullView returns true if no quadrant is selected
func (s *State) FullView() bool {
	return len(s.Selected) == 0
}

// clone a state
func (s *State) clone() *State {
	c := &State{
		Selected: s.Selected,
		Groups:   make(map[Order]Transform),
		Labels:   make(map[int]Transform),
		Pointer:  make(map[Order]bool),
	}
	for k, v := range s.Groups {
		c.Groups[k] = v
	}
	for k, v := range s.Labels {
		c.Labels[k] = v
	}
	for k, v := range s.Pointer {
		c.Pointer[k] = v
	}
	return c
}

// Transition animates from one state to another
type Transition struct {
	From, To *State
	Start    time.Time
	Duration time.Duration
}

// Progress of the transition at a given time (in [0,1])
func (t *Transition) Progress(now time.Time) float64 {
	if t.Duration <= 0 || !now.Before(t.Start.Add(t.Duration)) {
		return 1
	}
	if now.Before(t.Start) {
		return 0
	}
	return float64(now.Sub(t.Start)) / float64(t.Duration)
}

// Done returns true if the transition has completed
func (t *Transition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// At returns the interpolated state. Pointer events and the selection
// switch to the target immediately.
func (t *Transition) At(now time.Time) *State {
	f := t.Progress(now)
	if f >= 1 {
		return t.To.clone()
	}
	s := t.To.clone()
	for k, to := range t.To.Groups {
		from, ok := t.From.Groups[k]
		if !ok {
			from = Identity
		}
		s.Groups[k] = from.Lerp(to, f)
	}
	for k, to := range t.To.Labels {
		from, ok := t.From.Labels[k]
		if !ok {
			from = Identity
		}
		s.Labels[k] = from.Lerp(to, f)
	}
	return s
}

//----------------------------------------------------------------------

// TransformEngine computes the focus-zoom transforms and keeps track of
// the selection state (full view or one quadrant selected).
type TransformEngine struct {
	radar    *Radar
	bounds   BoundsProvider
	labels   map[Order]map[int]*Position // label anchors per quadrant
	current  *Transition
	now      func() time.Time
	listener Listener
}

// NewTransformEngine creates an engine in full view state.
func NewTransformEngine(r *Radar, bounds BoundsProvider, listener Listener) *TransformEngine {
	e := &TransformEngine{
		radar:    r,
		bounds:   bounds,
		labels:   make(map[Order]map[int]*Position),
		now:      time.Now,
		listener: listener,
	}
	full := e.fullView()
	e.current = &Transition{
		From:  full,
		To:    full,
		Start: e.now(),
	}
	return e
}

// SetClock replaces the time source (used for frame rendering)
func (e *TransformEngine) SetClock(now func() time.Time) {
	e.now = now
	e.current.Start = now()
}

// SetPlacements registers the label anchors of placed blips.
func (e *TransformEngine) SetPlacements(list []*Placement) {
	e.labels = make(map[Order]map[int]*Position)
	for _, pl := range list {
		m, ok := e.labels[pl.Quadrant]
		if !ok {
			m = make(map[int]*Position)
			e.labels[pl.Quadrant] = m
		}
		m[pl.Blip.Number] = pl.Label()
	}
	// labels start untransformed
	to := e.current.To
	for _, m := range e.labels {
		for num := range m {
			if _, ok := to.Labels[num]; !ok {
				to.Labels[num] = Identity
			}
		}
	}
}

// State returns the (interpolated) current state
func (e *TransformEngine) State() *State {
	return e.current.At(e.now())
}

// Transition returns the active (or last) transition
func (e *TransformEngine) Transition() *Transition {
	return e.current
}

// Select computes the focus-zoom on a quadrant. A running transition is
// re-targeted from its current state. Unknown orders or start angles not
// on a 90° grid are caller errors and panic.
func (e *TransformEngine) Select(o Order, startAngle float64) *Transition {
	if !o.Valid() {
		panic(fmt.Sprintf("select: %v '%s'", ErrInvalidOrder, o))
	}
	if err := checkStartAngle(startAngle); err != nil {
		panic(fmt.Sprintf("select: %v", err))
	}
	to := e.State()
	to.Selected = o

	size := e.radar.Size
	k := cfg.FocusScale
	s := ToRadian(startAngle)
	adjX := math.Sin(s) - math.Cos(s)
	adjY := math.Cos(s) + math.Sin(s)

	// align quadrant against the container edge
	quad := e.bounds.QuadrantBounds(o)
	cont := e.bounds.ContainerBounds()
	var tx float64
	if o.LeftHalf() {
		tx = (cont.Right - cont.OffsetLeft) - quad.Right
	} else {
		tx = (cont.Left + cont.OffsetLeft) - quad.Left
	}
	ty := -0.9*(1-adjY)*(size/2-7)*(k-1) - (1-adjY)/2*(1-k/2)*size
	to.Groups[o] = Transform{TX: tx, TY: ty, Scale: k}

	// collapse all other quadrants towards the outer edge
	txAll := (1-adjX)/2*size*k/2 + (1-adjX)/2*(1-k/2)*size
	tyAll := (1 + adjY) / 2 * size * k / 2
	for _, q := range e.radar.Quadrants {
		if q.Order == o {
			to.Pointer[q.Order] = true
			continue
		}
		to.Groups[q.Order] = Transform{TX: txAll, TY: tyAll, Scale: 0}
		to.Pointer[q.Order] = false
	}
	// keep labels legible
	for num, anchor := range e.labels[o] {
		to.Labels[num] = LabelTransform(anchor, cfg.LabelScale)
	}
	e.start(to)
	if e.listener != nil {
		e.listener(&Event{
			Type:     EvQuadrantSelected,
			Quadrant: o,
			Val:      startAngle,
		})
	}
	return e.current
}

// Redraw returns to the full radar view.
func (e *TransformEngine) Redraw() *Transition {
	e.start(e.fullView())
	if e.listener != nil {
		e.listener(&Event{Type: EvFullView})
	}
	return e.current
}

// start a new transition from the current (interpolated) state
func (e *TransformEngine) start(to *State) {
	now := e.now()
	e.current = &Transition{
		From:     e.current.At(now),
		To:       to,
		Start:    now,
		Duration: cfg.AnimationDuration,
	}
}

// fullView is the identity state for all groups
func (e *TransformEngine) fullView() *State {
	s := &State{
		Groups:  make(map[Order]Transform),
		Labels:  make(map[int]Transform),
		Pointer: make(map[Order]bool),
	}
	for _, q := range e.radar.Quadrants {
		s.Groups[q.Order] = Identity
		s.Pointer[q.Order] = true
	}
	for _, m := range e.labels {
		for num := range m {
			s.Labels[num] = Identity
		}
	}
	return s
}
