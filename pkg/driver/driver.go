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

package driver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/retroenv/retrogolib/log"
)

type Stepper interface {
	Step(delta uint32) error
}

// Roughly 500 instructions per second
const DEFAULT_STEP_INTERVAL = time.Second / 500

type Config struct {
	Clock Clock
	// Wall time between steps; zero selects DEFAULT_STEP_INTERVAL
	Interval time.Duration
	Logger   *log.Logger
}

// Run steps st once per interval with the time elapsed since the previous
// step until ctx is done or a step fails. Deltas too large for the timers
// saturate.
func Run(ctx context.Context, st Stepper, cfg Config) error {
	if cfg.Clock == nil {
		cfg.Clock = MonotonicClock{}
	}

	if cfg.Interval <= 0 {
		cfg.Interval = DEFAULT_STEP_INTERVAL
	}

	if cfg.Logger == nil {
		cfg.Logger = log.NewWithConfig(log.DefaultConfig())
	}

	last, err := cfg.Clock.Now()
	if err != nil {
		return fmt.Errorf("reading clock: %w", err)
	}

	cfg.Logger.Debug("Driver started", log.String("interval", cfg.Interval.String()))

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	var steps int

	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}

		// Both cases may be ready at once; cancellation wins
		if err := ctx.Err(); err != nil {
			cfg.Logger.Debug("Driver stopped", log.Int("steps", steps))
			return err
		}

		now, err := cfg.Clock.Now()
		if err != nil {
			return fmt.Errorf("reading clock: %w", err)
		}

		if err := st.Step(elapsed(last, now)); err != nil {
			cfg.Logger.Error("Step failed", nil, log.Err(err))
			return err
		}

		last = now
		steps++
	}
}

func elapsed(last, now uint64) uint32 {
	if now <= last {
		return 0
	}

	if delta := now - last; delta < math.MaxUint32 {
		return uint32(delta)
	}

	return math.MaxUint32
}
