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

import "errors"

var (
	ErrInvalidRingCount  = errors.New("ring count must be positive")
	ErrInvalidPlotSize   = errors.New("plot size must be positive")
	ErrInvalidStartAngle = errors.New("start angle must be a multiple of 90 degrees")
	ErrInvalidOrder      = errors.New("unknown quadrant order")
	ErrQuadrantCount     = errors.New("radar needs exactly four quadrants")
	ErrUnknownRing       = errors.New("blip references unknown ring")
	ErrDuplicateBlip     = errors.New("duplicate blip number")
	ErrInvalidBlip       = errors.New("blip number and width must be positive")
	ErrRingOrder         = errors.New("ring order must match its position")
)
