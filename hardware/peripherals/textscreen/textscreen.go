// This file is part of Pim65.
//
// Pim65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pim65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pim65.  If not, see <https://www.gnu.org/licenses/>.

// Package textscreen renders the Apple II 40 column text page as a string.
//
// The text page occupies $0400 to $07FF. Rows are not stored consecutively.
// Row r begins at $0400 + (r mod 8) * $80 + (r / 8) * $28, so that rows 0, 8
// and 16 share the first $80 byte block, rows 1, 9 and 17 the second, and so
// on.
package textscreen

import (
	"strings"

	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
)

// Dimensions of the text page.
const (
	Base    = uint16(0x0400)
	Size    = 0x0400
	Columns = 40
	Rows    = 24
)

// RowAddress returns the address of the first cell of the row. Valid rows are
// 0 to 23.
func RowAddress(row int) uint16 {
	return Base + uint16(row%8)*0x80 + uint16(row/8)*0x28
}

// cell converts the byte found in screen memory to a printable character. the
// high bit is ignored. non-printable characters and uninitialised memory are
// shown as spaces.
func cell(b uint8) byte {
	c := b & 0x7f
	if b == 0xff || c < 0x20 || c > 0x7e {
		return ' '
	}
	return c
}

// Row returns the text of a single row with trailing spaces removed.
func Row(mem cpubus.Memory, row int) string {
	var b [Columns]byte
	base := RowAddress(row)
	for col := 0; col < Columns; col++ {
		b[col] = cell(mem.Read(base + uint16(col)))
	}
	return strings.TrimRight(string(b[:]), " ")
}

// Dump returns the contents of the text page. Each row has trailing spaces
// removed and blank rows at the top and bottom of the screen are discarded.
// Rows are separated by a newline. There is no final newline.
func Dump(mem cpubus.Memory) string {
	rows := make([]string, Rows)
	for r := range rows {
		rows[r] = Row(mem, r)
	}

	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return strings.Join(rows, "\n")
}
