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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/pim65/curated"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
)

// Size of the address space.
const Size = 0x10000

// the value of every byte in the address space before anything is written to
// it.
const fillValue = 0xff

// ReadHook is called instead of reading the backing store.
type ReadHook func() uint8

// WriteHook is called instead of writing to the backing store. The data is
// always masked to eight bits.
type WriteHook func(data uint8)

// Sentinel error patterns.
const (
	// the address and the number of bytes that would not fit.
	LoadOverrun = "memory: binary overruns address space at %#04x (%d bytes too long)"
)

// AddressSpace is the 64KB address space of the 6502, with hooks.
type AddressSpace struct {
	memory [Size]uint8

	readHooks  map[uint16]ReadHook
	writeHooks map[uint16]WriteHook
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type.
func NewAddressSpace() *AddressSpace {
	mem := &AddressSpace{
		readHooks:  make(map[uint16]ReadHook),
		writeHooks: make(map[uint16]WriteHook),
	}
	for i := range mem.memory {
		mem.memory[i] = fillValue
	}
	return mem
}

// AddReadHook attaches a hook to an address. Any existing read hook at that
// address is replaced.
func (mem *AddressSpace) AddReadHook(address uint16, hook ReadHook) {
	mem.readHooks[address] = hook
}

// AddWriteHook attaches a hook to an address. Any existing write hook at that
// address is replaced.
func (mem *AddressSpace) AddWriteHook(address uint16, hook WriteHook) {
	mem.writeHooks[address] = hook
}

// Read implements the cpubus.Memory interface.
func (mem *AddressSpace) Read(address uint16) uint8 {
	if hook, ok := mem.readHooks[address]; ok {
		return hook()
	}
	return mem.memory[address]
}

// Write implements the cpubus.Memory interface.
func (mem *AddressSpace) Write(address uint16, data uint8) {
	if hook, ok := mem.writeHooks[address]; ok {
		hook(data)
		return
	}
	mem.memory[address] = data
}

// ReadWord reads a little-endian word. The two bytes are read with separate
// calls to Read() so hooks on either byte are honoured. The address of the
// second byte wraps around at the top of the address space.
func (mem *AddressSpace) ReadWord(address uint16) uint16 {
	return cpubus.ReadWord(mem, address)
}

// WriteWord writes a little-endian word with two calls to Write().
func (mem *AddressSpace) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// ReadWordZeroPage reads a little-endian word from the zero page. The address
// of the second byte wraps around within the zero page, so reading a word from
// 0xff reads the high byte from 0x00 and not from 0x100.
func (mem *AddressSpace) ReadWordZeroPage(address uint16) uint16 {
	return cpubus.ReadWordZeroPage(mem, uint8(address))
}

// LoadBinary copies data to the address space starting at origin. Each byte
// is written with Write() so hooks are honoured.
//
// Data that would extend past the top of the address space is an error. In
// that case nothing is written.
func (mem *AddressSpace) LoadBinary(data []byte, origin uint16) error {
	if over := int(origin) + len(data) - Size; over > 0 {
		return curated.Errorf(LoadOverrun, origin, over)
	}
	for i, d := range data {
		mem.Write(origin+uint16(i), d)
	}
	return nil
}

// SetResetVector points the reset vector at address.
func (mem *AddressSpace) SetResetVector(address uint16) {
	mem.WriteWord(cpubus.Reset, address)
}

// Peek reads the backing store directly. Hooks are not triggered.
func (mem *AddressSpace) Peek(address uint16) uint8 {
	return mem.memory[address]
}

// Poke writes to the backing store directly. Hooks are not triggered.
func (mem *AddressSpace) Poke(address uint16, data uint8) {
	mem.memory[address] = data
}

// Dump returns a copy of length bytes of the backing store, starting at
// origin. Hooks are not triggered. The copy is truncated at the top of the
// address space.
func (mem *AddressSpace) Dump(origin uint16, length int) []uint8 {
	end := int(origin) + length
	if end > Size {
		end = Size
	}
	if length <= 0 {
		return []uint8{}
	}
	d := make([]uint8, end-int(origin))
	copy(d, mem.memory[origin:end])
	return d
}

// HexDump returns a formatted view of length bytes of the backing store,
// starting at origin. The view is sixteen bytes to a row.
func (mem *AddressSpace) HexDump(origin uint16, length int) string {
	d := mem.Dump(origin, length)

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	// rows always begin on a sixteen byte boundary
	row := int(origin) &^ 0x0f
	end := int(origin) + len(d)
	for ; row < end; row += 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", row>>4))
		for x := row; x < row+16; x++ {
			if x < int(origin) || x >= end {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", d[x-int(origin)]))
			}
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}
