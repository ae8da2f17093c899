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

package machine_test

import (
	"errors"
	"testing"

	"github.com/lassandro/gochip8/pkg/hardware"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// Runs a scripted instruction per step
type scriptProcessor struct {
	steps []func(hw *hardware.Hardware) error
	index int
}

func (p *scriptProcessor) Execute(hw *hardware.Hardware) error {
	if p.index >= len(p.steps) {
		return nil
	}

	step := p.steps[p.index]
	p.index++
	return step(hw)
}

func newTestMachine(t *testing.T, steps ...func(hw *hardware.Hardware) error) *machine.Machine {
	t.Helper()

	hw := hardware.New(hardware.Config{
		TickPeriod: 1000,
		Logger:     log.NewTestLogger(t),
	})

	return machine.New(&scriptProcessor{steps: steps}, hw)
}

func TestStepExecutesBeforeAdvance(t *testing.T) {
	var observed uint8

	mc := newTestMachine(t,
		func(hw *hardware.Hardware) error {
			hw.SetDelayTimerCount(3)
			observed = hw.DelayTimerCount()
			return nil
		},
		func(hw *hardware.Hardware) error {
			observed = hw.DelayTimerCount()
			return nil
		},
	)

	assert.NoError(t, mc.Step(1000))
	assert.Equal(t, uint8(3), observed)
	assert.Equal(t, uint8(2), mc.Hardware().DelayTimerCount())

	assert.NoError(t, mc.Step(0))
	assert.Equal(t, uint8(2), observed)
}

func TestStepSound(t *testing.T) {
	mc := newTestMachine(t,
		func(hw *hardware.Hardware) error {
			hw.SetSoundTimerCount(2)
			return nil
		},
	)

	want := []bool{false, true, false}

	for i, play := range want {
		assert.NoError(t, mc.Step(1000))

		if have := mc.Hardware().PlaySound(); have != play {
			t.Errorf("Sound mismatch\nwant:%t (step %d)\nhave:%t", play, i, have)
		}
	}
}

func TestStepDrawsSprite(t *testing.T) {
	mc := newTestMachine(t,
		func(hw *hardware.Hardware) error {
			return hw.XorVRAM(0, 0xF0)
		},
		func(hw *hardware.Hardware) error {
			return hw.XorVRAM(0, 0xF0)
		},
	)

	assert.NoError(t, mc.Step(0))
	assert.Equal(t, uint8(0xF0), mc.Hardware().VRAM()[0])

	assert.NoError(t, mc.Step(0))
	assert.Equal(t, uint8(0x00), mc.Hardware().VRAM()[0])
}

func TestStepError(t *testing.T) {
	mc := newTestMachine(t,
		func(hw *hardware.Hardware) error {
			hw.SetDelayTimerCount(1)
			return hw.WriteRAM(0x1000, 0x00)
		},
	)

	err := mc.Step(1000)
	assert.True(t, err != nil)
	assert.True(t, errors.Is(err, hardware.ErrOutOfBounds))

	// Timers do not advance past a failed instruction
	assert.Equal(t, uint8(1), mc.Hardware().DelayTimerCount())
}
