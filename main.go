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
	"os"
	"os/signal"
	"syscall"

	"techradar/core"
	"techradar/logging"
	"techradar/plot"
)

func main() {
	//------------------------------------------------------------------
	// parse arguments
	var (
		cfgFile, outFile, mode, quadrant string
		level, logFile                   string
		search                           int
		listing                          bool
	)
	flag.StringVar(&cfgFile, "c", "radar.yaml", "radar configuration (JSON or YAML)")
	flag.StringVar(&outFile, "o", "", "output file (overrides configuration)")
	flag.StringVar(&mode, "m", "", "output mode 'svg' or 'png' (overrides configuration)")
	flag.StringVar(&quadrant, "q", "", "focus quadrant (first, second, third, fourth)")
	flag.IntVar(&search, "s", 0, "search blip by number")
	flag.BoolVar(&listing, "l", false, "print blip list")
	flag.StringVar(&level, "L", "", "log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log", "", "log file")
	flag.Parse()

	// read configuration
	if err := plot.ReadConfig(cfgFile); err != nil {
		logging.New("error", "").Fatal("configuration", "file", cfgFile, "error", err)
	}
	if len(outFile) > 0 {
		plot.Cfg.Plot.File = outFile
	}
	if len(mode) > 0 {
		plot.Cfg.Plot.Mode = mode
	}
	if len(level) > 0 {
		plot.Cfg.Log.Level = level
	}
	if len(logFile) > 0 {
		plot.Cfg.Log.File = logFile
	}
	listing = listing || plot.Cfg.Plot.Listing
	log := logging.New(plot.Cfg.Log.Level, plot.Cfg.Log.File)

	//------------------------------------------------------------------
	// plot radar
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
	if bg := plot.Cfg.Plot.Background; len(bg) > 0 {
		clr, err := plot.ParseColor(bg)
		if err != nil {
			log.Fatal("background", "error", err)
		}
		sess.SetBackground(clr)
	}
	if err = sess.Plot(); err != nil {
		log.Fatal("plot", "error", err)
	}

	//------------------------------------------------------------------
	// user actions
	sched := plot.NewScheduler(log.Logger)
	ctrl, err := plot.NewController(sess, sched, &logPresenter{log: log}, plot.Cfg.UI)
	if err != nil {
		log.Fatal("controller", "error", err)
	}
	if len(quadrant) > 0 {
		if err = ctrl.SelectQuadrant(core.Order(quadrant)); err != nil {
			log.Fatal("select", "error", err)
		}
	}
	if search > 0 {
		if err = ctrl.SearchBlip(search); err != nil {
			log.Fatal("search", "error", err)
		}
	}
	// wait for deferred actions (or a signal)
	done := make(chan struct{})
	go func() {
		sched.Wait()
		close(done)
	}()
	sigCh := make(chan os.Signal, 5)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-done:
	case sig := <-sigCh:
		log.Warn("interrupted", "signal", sig.String())
	}

	//------------------------------------------------------------------
	// render the target state of the last transition
	f, err := os.Create(plot.Cfg.Plot.File)
	if err != nil {
		log.Fatal("output", "error", err)
	}
	defer f.Close()
	c, err := plot.GetCanvas(plot.Cfg.Plot.Mode, f, plot.Cfg.Plot.Scale)
	if err != nil {
		log.Fatal("canvas", "error", err)
	}
	c.Open()
	look := ctrl.Look()
	if err = sess.Render(c, sess.Engine().Transition().To, look); err != nil {
		log.Fatal("render", "error", err)
	}
	c.Close()
	log.Info("radar written",
		"file", plot.Cfg.Plot.File,
		"mode", plot.Cfg.Plot.Mode,
		"elapsed", log.Elapsed().String())

	if listing {
		if err = plot.WriteListing(os.Stdout, radar, plot.Cfg.Legend, look); err != nil {
			log.Fatal("listing", "error", err)
		}
	}
}
