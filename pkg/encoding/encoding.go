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

package encoding

import (
	"strings"
)

// Locates pixel (x, y) in a framebuffer packed 8 pixels per byte, row-major,
// most significant bit first.
func PixelIndex(x, y, width int) (int, uint8) {
	offset := y*width + x
	return offset / 8, 0x80 >> uint(offset%8)
}

// Assumes x, y lie inside the framebuffer
func Pixel(vram []byte, x, y, width int) bool {
	index, mask := PixelIndex(x, y, width)
	return vram[index]&mask != 0
}

// Renders each framebuffer row as text, '#' for lit pixels and '.' otherwise.
// A non-positive width yields no rows.
func Rows(vram []byte, width int) []string {
	if width <= 0 {
		return nil
	}

	height := len(vram) * 8 / width
	rows := make([]string, 0, height)

	var sb strings.Builder

	for y := 0; y < height; y++ {
		sb.Reset()

		for x := 0; x < width; x++ {
			if Pixel(vram, x, y, width) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}

		rows = append(rows, sb.String())
	}

	return rows
}

// Packs a text row such as "#..#...." into a sprite byte, the inverse of
// Rows for a single byte. Characters past the eighth are ignored.
func PackRow(pattern string) uint8 {
	var value uint8

	for i := 0; i < len(pattern) && i < 8; i++ {
		if pattern[i] == '#' {
			value |= 0x80 >> uint(i)
		}
	}

	return value
}
