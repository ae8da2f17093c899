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
	"bytes"
	"fmt"
	"io"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/retroenv/retrogolib/log"
)

// New returns zeroed hardware. A zero TickPeriod or nil Logger in cfg falls
// back to the DefaultConfig values.
func New(cfg Config) *Hardware {
	defaults := DefaultConfig()

	if cfg.TickPeriod == 0 {
		cfg.TickPeriod = defaults.TickPeriod
	}

	if cfg.Logger == nil {
		cfg.Logger = defaults.Logger
	}

	return &Hardware{
		delay:  newTimer("delay", cfg.TickPeriod, cfg.Logger),
		sound:  newTimer("sound", cfg.TickPeriod, cfg.Logger),
		logger: cfg.Logger,
	}
}

func (hw *Hardware) Reset() {
	hw.delay.reset()
	hw.sound.reset()
	hw.memory.reset()

	for i := range hw.keys {
		hw.keys[i] = KEY_UP
	}
}

// SetKey latches a key transition. Any nonzero state counts as down.
func (hw *Hardware) SetKey(code uint8, state uint8) error {
	if int(code) >= KEY_COUNT {
		return fmt.Errorf("%w: key %#x", ErrOutOfBounds, code)
	}

	if state != KEY_UP {
		state = KEY_DOWN
	}

	hw.keys[code] = state
	return nil
}

func (hw *Hardware) ReadKey(code int) (uint8, error) {
	if code < 0 || code >= KEY_COUNT {
		return 0, fmt.Errorf("%w: key %#x", ErrOutOfBounds, code)
	}

	return hw.keys[code], nil
}

func (hw *Hardware) ReadRAM(addr int) (uint8, error) {
	if addr < 0 || addr >= RAM_SIZE {
		return 0, fmt.Errorf("%w: ram %#04x", ErrOutOfBounds, addr)
	}

	return hw.memory.ram[addr], nil
}

func (hw *Hardware) WriteRAM(addr int, value uint8) error {
	if addr < 0 || addr >= RAM_SIZE {
		return fmt.Errorf("%w: ram %#04x", ErrOutOfBounds, addr)
	}

	hw.memory.ram[addr] = value
	return nil
}

func (hw *Hardware) ReadVRAM(addr int) (uint8, error) {
	if addr < 0 || addr >= VRAM_SIZE {
		return 0, fmt.Errorf("%w: vram %#02x", ErrOutOfBounds, addr)
	}

	return hw.memory.vram[addr], nil
}

// WriteVRAM overwrites a framebuffer byte, as used when clearing the screen.
func (hw *Hardware) WriteVRAM(addr int, value uint8) error {
	if addr < 0 || addr >= VRAM_SIZE {
		return fmt.Errorf("%w: vram %#02x", ErrOutOfBounds, addr)
	}

	hw.memory.vram[addr] = value
	return nil
}

// XorVRAM draws value onto a framebuffer byte. Collision detection is left to
// the processor.
func (hw *Hardware) XorVRAM(addr int, value uint8) error {
	if addr < 0 || addr >= VRAM_SIZE {
		return fmt.Errorf("%w: vram %#02x", ErrOutOfBounds, addr)
	}

	hw.memory.vram[addr] ^= value
	return nil
}

// VRAM returns a copy of the framebuffer: 64x32, MSB-first, row-major.
func (hw *Hardware) VRAM() [VRAM_SIZE]byte {
	return hw.memory.vram
}

func (hw *Hardware) Pixel(x, y int) (bool, error) {
	if x < 0 || x >= DISPLAY_WIDTH || y < 0 || y >= DISPLAY_HEIGHT {
		return false, fmt.Errorf("%w: pixel %d,%d", ErrOutOfBounds, x, y)
	}

	return encoding.Pixel(hw.memory.vram[:], x, y, DISPLAY_WIDTH), nil
}

func (hw *Hardware) DelayTimerCount() uint8 {
	return hw.delay.Count()
}

func (hw *Hardware) SetDelayTimerCount(value uint8) {
	hw.delay.SetCount(value)
}

func (hw *Hardware) SoundTimerCount() uint8 {
	return hw.sound.Count()
}

func (hw *Hardware) SetSoundTimerCount(value uint8) {
	if hw.logger != nil {
		hw.logger.Debug("Sound timer set", log.Uint8("count", value))
	}
	hw.sound.SetCount(value)
}

// PlaySound is polled once per audio frame; the flag is not latched.
func (hw *Hardware) PlaySound() bool {
	return hw.sound.Complete()
}

// LoadRom copies data into program memory and then writes the font set. An
// oversize ROM is rejected before any byte is written.
func (hw *Hardware) LoadRom(data []byte) error {
	if len(data) > RAM_SIZE-MEMSPACE_PROGRAM {
		return fmt.Errorf(
			"%w: %d bytes, %d available",
			ErrRomTooLarge,
			len(data),
			RAM_SIZE-MEMSPACE_PROGRAM,
		)
	}

	copy(hw.memory.ram[MEMSPACE_PROGRAM:], data)
	copy(hw.memory.ram[MEMSPACE_FONT:], fontset[:])

	if hw.logger != nil {
		hw.logger.Debug("ROM loaded", log.Int("size", len(data)))
	}
	return nil
}

// LoadRomFrom reads a whole ROM image from reader and loads it.
func (hw *Hardware) LoadRomFrom(reader io.Reader) error {
	var buf bytes.Buffer

	// One byte past the limit is enough to detect an oversize image
	limit := int64(RAM_SIZE - MEMSPACE_PROGRAM + 1)

	if _, err := buf.ReadFrom(io.LimitReader(reader, limit)); err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	return hw.LoadRom(buf.Bytes())
}

// Advance ticks the delay timer, then the sound timer.
func (hw *Hardware) Advance(delta uint32) {
	hw.delay.Update(delta)
	hw.sound.Update(delta)
}
