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

package machine

import (
	"fmt"

	"github.com/lassandro/gochip8/pkg/hardware"
)

func New(processor Processor, hw *hardware.Hardware) *Machine {
	return &Machine{processor: processor, hardware: hw}
}

// Hardware exposes the bundle to the renderer, audio and input collaborators.
func (mc *Machine) Hardware() *hardware.Hardware {
	return mc.hardware
}

// Step executes one instruction and then advances the timers by delta. A
// failed instruction leaves the timers untouched.
func (mc *Machine) Step(delta uint32) error {
	if err := mc.processor.Execute(mc.hardware); err != nil {
		return fmt.Errorf("executing instruction: %w", err)
	}

	mc.hardware.Advance(delta)
	return nil
}
