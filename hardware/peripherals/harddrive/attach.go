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

package harddrive

import (
	"github.com/jetsetilly/pim65/hardware/cpu"
	"github.com/jetsetilly/pim65/hardware/peripherals"
)

// Attach the hard drive to the system. The slot ROM is copied into the
// address space and a PC hook is registered for the entry point.
func (hd *HardDrive) Attach(bus peripherals.Bus, mc *cpu.CPU) error {
	if err := bus.LoadBinary(hd.ROM(), ROMBase); err != nil {
		return err
	}

	mc.AddPCHook(EntryPoint, func() error {
		a, carry, err := hd.HandleBlockCall(bus)
		if err != nil {
			return err
		}
		mc.A.Load(a)
		mc.Status.Carry = carry
		mc.Return()
		return nil
	})

	return nil
}
