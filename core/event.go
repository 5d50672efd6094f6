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

// Event types
const (
	EvBlipPlaced       = 1 // blip placed without collision
	EvBlipShrunk       = 2 // blip width reduced to find a free spot
	EvOverlapAccepted  = 3 // no free spot at minimum width; overlap accepted
	EvQuadrantSelected = 4 // focus-zoom on a quadrant started
	EvFullView         = 5 // full radar view restored
)

// Event from the engine if something interesting happens
type Event struct {
	Type     int       // event type (see consts)
	Blip     *Blip     // blip concerned (placement events)
	Quadrant Order     // quadrant concerned
	Ring     string    // ring name (placement events)
	Val      float64   // additional data (width for shrink/overlap)
	Pos      *Position // coordinate (placement events)
}

// Listener for engine events
type Listener func(*Event)

// EventName returns a short label for an event type.
func EventName(t int) string {
	switch t {
	case EvBlipPlaced:
		return "placed"
	case EvBlipShrunk:
		return "shrunk"
	case EvOverlapAccepted:
		return "overlap"
	case EvQuadrantSelected:
		return "selected"
	case EvFullView:
		return "full-view"
	}
	return "unknown"
}
