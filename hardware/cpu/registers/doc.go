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

// Package registers implements the three types of registers found in the
// 6502. The general purpose 8-bit register (used for A, X, Y and the stack
// pointer), the 16-bit program counter and the status register.
//
// The Register type implements the arithmetic and logical operations of the
// 6502 ALU. Each operation returns the carry and overflow information that
// the CPU needs to update the status register. Decimal mode is not
// implemented. The decimal flag can be set and cleared but it has no effect
// on arithmetic.
package registers
