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
	"flag"
	"fmt"
	"os"
	"time"

	"techradar/core"
	"techradar/logging"
	"techradar/plot"
)

// Render the focus-zoom transition of a quadrant (and back to the full
// view) as a sequence of numbered frames.
func main() {
	//------------------------------------------------------------------
	// parse arguments
	var (
		cfgFile, prefix, quadrant string
		num                       int
		back                      bool
	)
	flag.StringVar(&cfgFile, "c", "radar.yaml", "radar configuration (JSON or YAML)")
	flag.StringVar(&prefix, "o", "frame", "prefix of frame files")
	flag.StringVar(&quadrant, "q", "first", "quadrant to focus")
	flag.IntVar(&num, "n", 25, "frames per transition")
	flag.BoolVar(&back, "b", false, "also render the way back to the full view")
	flag.Parse()

	if err := plot.ReadConfig(cfgFile); err != nil {
		logging.New("error", "").Fatal("configuration", "file", cfgFile, "error", err)
	}
	log := logging.New(plot.Cfg.Log.Level, plot.Cfg.Log.File)
	if num < 2 {
		log.Fatal("need at least two frames", "n", num)
	}

	radar, err := plot.Cfg.Radar()
	if err != nil {
		log.Fatal("radar definition", "error", err)
	}
	pal, err := plot.Cfg.Palette()
	if err != nil {
		log.Fatal("palette", "error", err)
	}
	sess, err := plot.NewSession(radar, pal, log.Logger)
	if err != nil {
		log.Fatal("session", "error", err)
	}
	if err = sess.Plot(); err != nil {
		log.Fatal("plot", "error", err)
	}
	q := radar.Quadrant(core.Order(quadrant))
	if q == nil {
		log.Fatal("unknown quadrant", "quadrant", quadrant)
	}

	// the engine runs on a frame clock
	var now time.Time
	eng := sess.Engine()
	eng.SetClock(func() time.Time { return now })

	frame := 0
	run := func(tr *core.Transition) {
		step := tr.Duration / time.Duration(num-1)
		for i := 0; i < num; i++ {
			now = tr.Start.Add(time.Duration(i) * step)
			frame++
			if err := render(sess, eng.State(), prefix, frame); err != nil {
				log.Fatal("frame", "n", frame, "error", err)
			}
		}
	}
	run(eng.Select(q.Order, q.StartAngle))
	if back {
		now = now.Add(time.Millisecond)
		run(eng.Redraw())
	}
	log.Info("frames written", "count", frame, "prefix", prefix)
}

// render a single frame to file
func render(sess *plot.Session, st *core.State, prefix string, n int) error {
	fn := fmt.Sprintf("%s.%03d.%s", prefix, n, plot.Cfg.Plot.Mode)
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	c, err := plot.GetCanvas(plot.Cfg.Plot.Mode, f, plot.Cfg.Plot.Scale)
	if err != nil {
		return err
	}
	c.Open()
	defer c.Close()
	return sess.Render(c, st, nil)
}
