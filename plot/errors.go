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

import "errors"

// Error codes
var (
	ErrConfig     = errors.New("invalid configuration")
	ErrMode       = errors.New("unknown output mode")
	ErrColor      = errors.New("invalid color")
	ErrNoLayout   = errors.New("radar not plotted")
	ErrNoBlip     = errors.New("unknown blip")
	ErrNoQuadrant = errors.New("unknown quadrant")
)
