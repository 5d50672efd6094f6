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
	"io"
	"strings"

	"techradar/core"
)

// WriteListing writes the blip list of all quadrants grouped by ring.
// New blips are marked with a triangle, all others with a circle.
func WriteListing(wrt io.Writer, r *core.Radar, legend *LegendCfg, look *Look) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "o %s\n^ %s\n", legend.CircleKey, legend.TriangleKey)
	for _, q := range r.Quadrants {
		fmt.Fprintf(&sb, "\n%s\n", q.Name)
		for _, ring := range r.Rings {
			blips := q.RingBlips(ring.Name)
			if len(blips) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "  %s\n", ring.Name)
			for _, b := range blips {
				mark := "o"
				if b.IsNew {
					mark = "^"
				}
				hl := ""
				if look.Highlighted(b.Number) {
					hl = " <"
				}
				fmt.Fprintf(&sb, "    %s %s%s\n", mark, b.Label(), hl)
				if look != nil && look.Expanded == b.Number && len(b.Description) > 0 {
					fmt.Fprintf(&sb, "        %s\n", b.Description)
				}
			}
		}
	}
	_, err := io.WriteString(wrt, sb.String())
	return err
}
