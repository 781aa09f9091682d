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

// Package cpubus defines the view of memory that the CPU has. It also
// defines the addresses of the vectors and other special locations that the
// CPU and the simulator refer to.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses always resolve so neither operation can fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Vector addresses. The NMI vector is never used because there is nothing to
// generate an NMI but it is listed for completeness.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Success is the address which indicates that the guest program has finished
// successfully. The CPU halts when the program counter reaches this address
// and the instruction there is never fetched.
const Success = uint16(0xfff9)

// StackBase is the address of the first byte of the stack page. The stack
// pointer is an offset into this page.
const StackBase = uint16(0x0100)

// ReadWord reads a little-endian word with two calls to Read(). The address of
// the high byte wraps around at the top of the address space.
func ReadWord(mem Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// ReadWordZeroPage reads a little-endian word from the zero page. The address
// of the high byte wraps around within the zero page, so reading a word from
// 0xff reads the high byte from 0x00 and not from 0x100.
func ReadWordZeroPage(mem Memory, address uint8) uint16 {
	lo := mem.Read(uint16(address))
	hi := mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}
