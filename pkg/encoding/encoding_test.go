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

package encoding_test

import (
	"testing"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/retroenv/retrogolib/assert"
)

func TestPixelIndex(t *testing.T) {
	tests := []struct {
		X, Y  int
		Index int
		Mask  uint8
	}{
		{0, 0, 0, 0x80},
		{7, 0, 0, 0x01},
		{8, 0, 1, 0x80},
		{63, 0, 7, 0x01},
		{0, 1, 8, 0x80},
		{63, 31, 255, 0x01},
	}

	for _, tt := range tests {
		index, mask := encoding.PixelIndex(tt.X, tt.Y, 64)

		if index != tt.Index || mask != tt.Mask {
			t.Errorf(
				"Pixel index mismatch"+
					"\nwant:%d/%#02x (%d,%d)\nhave:%d/%#02x",
				tt.Index,
				tt.Mask,
				tt.X,
				tt.Y,
				index,
				mask,
			)
		}
	}
}

func TestRows(t *testing.T) {
	vram := make([]byte, 4)
	vram[0] = encoding.PackRow("#..#....")
	vram[3] = encoding.PackRow(".......#")

	rows := encoding.Rows(vram, 16)

	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "#..#............", rows[0])
	assert.Equal(t, "...............#", rows[1])
}

func TestPackRow(t *testing.T) {
	assert.Equal(t, uint8(0xF0), encoding.PackRow("####"))
	assert.Equal(t, uint8(0x81), encoding.PackRow("#......#####"))
	assert.Equal(t, uint8(0x00), encoding.PackRow(""))
}

func TestRowsZeroWidth(t *testing.T) {
	assert.Equal(t, 0, len(encoding.Rows(make([]byte, 8), 0)))
	assert.Equal(t, 0, len(encoding.Rows(make([]byte, 8), -8)))
}
