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

package main

import (
	"techradar/core"
	"techradar/logging"
)

// logPresenter reports UI effects to the log
type logPresenter struct {
	log *logging.Logger
}

func (p *logPresenter) ShowTip(b *core.Blip, pos *core.Position) {
	p.log.Info("tooltip", "blip", b.Label(), "pos", pos.String())
}

func (p *logPresenter) HideTip() {
	p.log.Debug("tooltip hidden")
}

func (p *logPresenter) ScrollTo(b *core.Blip) {
	p.log.Info("scroll into view", "blip", b.Number)
}
