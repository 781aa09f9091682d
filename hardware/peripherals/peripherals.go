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

// Package peripherals and its sub-packages emulate the Apple II hardware that
// is visible to a guest program: the 40 column text screen, the keyboard and
// a ProDOS block device in slot 2.
//
// Peripherals do not special-case the CPU. They take part in guest execution
// by registering read and write hooks with the address space, or by
// registering a PC hook with the CPU.
package peripherals

import (
	"github.com/jetsetilly/pim65/hardware/memory"
	"github.com/jetsetilly/pim65/hardware/memory/cpubus"
)

// Bus is the view of the address space required by peripherals that
// intercept memory accesses. It is satisfied by memory.AddressSpace.
type Bus interface {
	cpubus.Memory
	AddReadHook(address uint16, hook memory.ReadHook)
	AddWriteHook(address uint16, hook memory.WriteHook)
	LoadBinary(data []byte, origin uint16) error
}

// Apple II soft switch and slot addresses used by the peripherals.
const (
	KeyboardData   = uint16(0xc000)
	KeyboardStrobe = uint16(0xc010)

	// slot ROMs occupy $Cn00 to $CnFF for slots 1 to 7
	SlotROMBase = uint16(0xc000)
	SlotROMSize = 0x100
)

// SlotROM returns the base address of the ROM for the slot.
func SlotROM(slot int) uint16 {
	return SlotROMBase + uint16(slot)*SlotROMSize
}
