// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package hardware

import (
	"math"

	"github.com/retroenv/retrogolib/log"
)

func newTimer(name string, period uint32, logger *log.Logger) timer {
	return timer{name: name, period: period, logger: logger}
}

// Update accumulates delta and consumes at most one tick period per call. The
// backlog saturates at the uint32 maximum instead of wrapping.
func (t *timer) Update(delta uint32) {
	if delta > math.MaxUint32-t.accumulated {
		t.accumulated = math.MaxUint32
	} else {
		t.accumulated += delta
	}

	if t.accumulated < t.period {
		return
	}

	t.accumulated -= t.period

	if t.count > 0 {
		t.count--

		if t.count == 0 {
			t.completed = true

			if t.logger != nil {
				t.logger.Debug("Timer triggered", log.String("timer", t.name))
			}
		}
	} else {
		// An idle timer crossing a tick boundary drops its completed flag
		if t.completed && t.logger != nil {
			t.logger.Debug("Timer switched off", log.String("timer", t.name))
		}
		t.completed = false
	}
}

// Complete reports whether the last tick brought the count from 1 to 0.
func (t *timer) Complete() bool {
	return t.completed
}

func (t *timer) SetCount(value uint8) {
	t.count = value
}

func (t *timer) Count() uint8 {
	return t.count
}

func (t *timer) reset() {
	t.count = 0
	t.accumulated = 0
	t.completed = false
}
