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
	"github.com/retroenv/retrogolib/log"
)

type Config struct {
	// Nanoseconds per timer tick, in the same unit as the Advance delta
	TickPeriod uint32
	Logger     *log.Logger
}

// DefaultConfig returns a 60 Hz configuration logging at the default level.
func DefaultConfig() Config {
	return Config{
		TickPeriod: DEFAULT_TICK_PERIOD,
		Logger:     log.NewWithConfig(log.DefaultConfig()),
	}
}

type timer struct {
	name        string
	period      uint32
	count       uint8
	accumulated uint32
	completed   bool
	logger      *log.Logger
}

type Memory struct {
	ram  [RAM_SIZE]byte
	vram [VRAM_SIZE]byte
}

// Hardware should be created with New; a zero value has no logger and a zero
// tick period, so its timers tick on every Advance.
type Hardware struct {
	delay  timer
	sound  timer
	memory Memory
	keys   [KEY_COUNT]uint8
	logger *log.Logger
}
