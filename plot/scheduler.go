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
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs deferred UI actions. Actions are never cancelled or
// coalesced: several pending actions may coexist and fire in order of
// their deadlines.
type Scheduler struct {
	wg      sync.WaitGroup
	run     sync.Mutex // serializes actions
	lock    sync.Mutex // protects pending
	pending int        // number of pending actions
	log     *slog.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{log: log}
}

// After runs fn once the delay has passed.
func (s *Scheduler) After(d time.Duration, name string, fn func()) {
	s.lock.Lock()
	s.pending++
	s.lock.Unlock()
	s.wg.Add(1)
	s.log.Debug("action scheduled", "action", name, "delay", d)
	time.AfterFunc(d, func() {
		defer s.wg.Done()
		s.run.Lock()
		defer s.run.Unlock()
		s.lock.Lock()
		s.pending--
		s.lock.Unlock()
		s.log.Debug("action fired", "action", name)
		fn()
	})
}

// Pending returns the number of actions not yet run
func (s *Scheduler) Pending() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.pending
}

// Wait until all scheduled actions have run
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
