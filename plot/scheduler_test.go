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
	"sync"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler(nil)
	var (
		lock  sync.Mutex
		fired []string
	)
	add := func(name string) func() {
		return func() {
			lock.Lock()
			fired = append(fired, name)
			lock.Unlock()
		}
	}
	// pending actions are neither cancelled nor coalesced
	s.After(30*time.Millisecond, "late", add("late"))
	s.After(5*time.Millisecond, "early", add("early"))
	s.After(30*time.Millisecond, "late", add("late"))
	if n := s.Pending(); n != 3 {
		t.Errorf("%d pending", n)
	}
	s.Wait()
	if len(fired) != 3 || fired[0] != "early" {
		t.Errorf("fired: %v", fired)
	}
	if n := s.Pending(); n != 0 {
		t.Errorf("%d pending after wait", n)
	}
}

func TestSchedulerNested(t *testing.T) {
	s := NewScheduler(nil)
	done := make(chan struct{})
	s.After(time.Millisecond, "outer", func() {
		s.After(time.Millisecond, "inner", func() {
			close(done)
		})
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("nested action did not run")
	}
	s.Wait()
}
